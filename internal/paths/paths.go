// Package paths resolves the per-user application data directory and the
// well-known file names TidyBot keeps inside it.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// ConfigFilename is the configuration file kept in the app data directory.
	ConfigFilename = "config.json"

	// BackupSuffix is appended to the config filename when a corrupt file is
	// set aside before being replaced with defaults.
	BackupSuffix = ".bak"

	// LogFilename is the log file kept in the app data directory.
	LogFilename = "tidybot.log"

	// LockFilename is the lock file guarding against concurrent runs.
	LockFilename = "tidybot.lock"
)

// AppDataDir returns the directory TidyBot stores its state in:
// %APPDATA%\TidyBot on Windows, ~/.config/tidybot everywhere else.
// The directory is not created here; callers decide when to create it.
func AppDataDir() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "TidyBot"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tidybot"), nil
}

// ConfigFile returns the config file path inside the app data directory.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFilename)
}

// BackupFile returns the path a corrupt config file is copied to.
func BackupFile(dir string) string {
	return ConfigFile(dir) + BackupSuffix
}

// LogFile returns the log file path inside the app data directory.
func LogFile(dir string) string {
	return filepath.Join(dir, LogFilename)
}

// LockFile returns the lock file path inside the app data directory.
func LockFile(dir string) string {
	return filepath.Join(dir, LockFilename)
}

// Expand resolves a leading ~ to the user home directory and returns the
// cleaned absolute form of the path.
func Expand(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
			path = filepath.Join(home, path[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	return absolute, nil
}
