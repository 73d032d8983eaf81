package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/ProHeartly/tidyBot/internal/errors"
	"github.com/ProHeartly/tidyBot/internal/logging"
	"github.com/ProHeartly/tidyBot/internal/paths"
)

// Store loads and persists the configuration file kept in the app data
// directory. Load never fails outward: every failure branch resolves to a
// usable in-memory configuration.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a store rooted at the given app data directory.
// A nil logger means a no-op logger.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return paths.ConfigFile(s.dir)
}

// BackupPath returns the path a corrupt config file is set aside to.
func (s *Store) BackupPath() string {
	return paths.BackupFile(s.dir)
}

// Load resolves the configuration:
//   - missing file: defaults, nothing written
//   - readable and valid: returned with the downloads path expanded
//   - readable but malformed: original set aside as a backup, a pristine
//     default file written in its place, defaults returned
//   - unreadable: defaults for this run, nothing written
func (s *Store) Load() *Config {
	cfg, err := s.read()
	if err == nil {
		return cfg
	}

	switch {
	case errors.Is(err, os.ErrNotExist):
		s.logger.Debug("no config file yet, using defaults", logging.String("path", s.Path()))
	case errors.IsConfigMalformed(err):
		s.logger.Warn("config file is corrupt, backing it up and writing defaults",
			logging.String("backup", s.BackupPath()), logging.Error(err))
		if repairErr := s.repair(); repairErr != nil {
			s.logger.Warn("could not replace corrupt config file", logging.Error(repairErr))
		}
	default:
		s.logger.Warn("config file is unreadable, using defaults for this run", logging.Error(err))
	}

	cfg = Default()
	s.expand(cfg)
	return cfg
}

// read loads and validates the config file, tagging failures as malformed
// (bad content) or unreadable (I/O) so Load can pick the right branch.
func (s *Store) read() (*Config, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, errors.NewConfigError("cannot read config file", s.Path(), errors.ConfigUnreadable, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("cannot parse config file", s.Path(), errors.ConfigMalformed, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("invalid config file", s.Path(), errors.ConfigMalformed, err)
	}

	s.expand(cfg)
	return cfg, nil
}

// Save writes the configuration atomically: marshal, write a temp file next
// to the target, then rename over it.
func (s *Store) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpPath := s.Path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("replace config file: %w", err)
	}

	return nil
}

// repair sets the unparseable file aside and writes a pristine default file.
// A failed backup is logged and skipped; the replacement is written either way
// so the next run starts from a readable file.
func (s *Store) repair() error {
	if err := s.backup(); err != nil {
		s.logger.Warn("could not back up corrupt config file", logging.Error(err))
	}
	return s.Save(Default())
}

// backup copies the current config file bytes to the backup path.
func (s *Store) backup() error {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return fmt.Errorf("read config for backup: %w", err)
	}
	if err := os.WriteFile(s.BackupPath(), data, 0o644); err != nil {
		return fmt.Errorf("write config backup: %w", err)
	}
	return nil
}

// expand resolves the ~ shorthand in the downloads path. Expansion failures
// leave the path as-is; the organize run reports the unusable target.
func (s *Store) expand(cfg *Config) {
	expanded, err := paths.Expand(cfg.DownloadsPath)
	if err != nil {
		s.logger.Warn("cannot expand downloads path",
			logging.String("path", cfg.DownloadsPath), logging.Error(err))
		return
	}
	cfg.DownloadsPath = expanded
}
