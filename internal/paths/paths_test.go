package paths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ProHeartly/tidyBot/internal/paths"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppDataDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("checks the unix layout")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := paths.AppDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "tidybot"), dir)
}

func TestWellKnownFiles(t *testing.T) {
	dir := filepath.Join("data", "tidybot")
	assert.Equal(t, filepath.Join(dir, "config.json"), paths.ConfigFile(dir))
	assert.Equal(t, filepath.Join(dir, "config.json.bak"), paths.BackupFile(dir))
	assert.Equal(t, filepath.Join(dir, "tidybot.log"), paths.LogFile(dir))
	assert.Equal(t, filepath.Join(dir, "tidybot.lock"), paths.LockFile(dir))
}

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("tilde alone", func(t *testing.T) {
		got, err := paths.Expand("~")
		require.NoError(t, err)
		assert.Equal(t, home, got)
	})

	t.Run("tilde prefix", func(t *testing.T) {
		got, err := paths.Expand("~/Downloads")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "Downloads"), got)
	})

	t.Run("absolute path is cleaned", func(t *testing.T) {
		got, err := paths.Expand("/var//tmp/../log")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/var/log"), got)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := paths.Expand("downloads")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "downloads", filepath.Base(got))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		got, err := paths.Expand("")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}
