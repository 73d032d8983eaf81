package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"github.com/ProHeartly/tidyBot/internal/paths"
	"github.com/ProHeartly/tidyBot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args []string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// setupHome points HOME at a fresh directory with a Downloads folder inside.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "Downloads"), 0o755))
	return home
}

func TestOrganizeRun(t *testing.T) {
	home := setupHome(t)
	downloads := filepath.Join(home, "Downloads")
	testutil.WriteFiles(t, downloads, map[string]string{
		"photo.jpg":  "p",
		"report.pdf": "r",
	})

	_, stderr, err := runCLI(t, []string{})
	require.NoError(t, err)
	assert.Contains(t, stderr, "Done. Moved 2 file(s), 0 failure(s)")

	assert.FileExists(t, filepath.Join(downloads, "Graphics", "photo.jpg"))
	assert.FileExists(t, filepath.Join(downloads, "Documents", "report.pdf"))

	dir, err := paths.AppDataDir()
	require.NoError(t, err)
	assert.FileExists(t, paths.ConfigFile(dir), "the first pass persists the configuration")
	assert.FileExists(t, paths.LogFile(dir))
}

func TestOrganizeDryRun(t *testing.T) {
	home := setupHome(t)
	downloads := filepath.Join(home, "Downloads")
	testutil.WriteFiles(t, downloads, map[string]string{"photo.jpg": "p"})

	_, stderr, err := runCLI(t, []string{"--dry-run"})
	require.NoError(t, err)
	assert.Contains(t, stderr, "[DRY RUN] Would move 'photo.jpg' to 'Graphics/'")

	assert.FileExists(t, filepath.Join(downloads, "photo.jpg"), "a dry run moves nothing")
	assert.NoDirExists(t, filepath.Join(downloads, "Graphics"))

	dir, err := paths.AppDataDir()
	require.NoError(t, err)
	_, err = os.Stat(paths.ConfigFile(dir))
	assert.ErrorIs(t, err, os.ErrNotExist, "a dry run persists nothing")
}

func TestOrganizeMissingTarget(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no Downloads folder

	_, stderr, err := runCLI(t, []string{})
	assert.NoError(t, err, "an unusable target is reported, not a CLI failure")
	assert.Contains(t, stderr, "downloads directory does not exist")
}

func TestRefusesSecondInstance(t *testing.T) {
	setupHome(t)
	dir, err := paths.AppDataDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	held := flock.New(paths.LockFile(dir))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = held.Unlock() }()

	_, _, err = runCLI(t, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "another tidybot run appears to be active")
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"--version"})
	require.NoError(t, err)
	assert.Contains(t, stdout, version)
}
