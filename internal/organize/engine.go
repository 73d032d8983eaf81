package organize

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ProHeartly/tidyBot/internal/config"
	"github.com/ProHeartly/tidyBot/internal/errors"
	"github.com/ProHeartly/tidyBot/internal/logging"
	"github.com/ProHeartly/tidyBot/pkg/types"
)

// Engine performs one organizing pass over the configured downloads
// directory.
type Engine struct {
	cfg        *config.Config
	store      *config.Store
	classifier *Classifier
	logger     *slog.Logger
	dryRun     bool
}

// NewEngine creates an engine for cfg. The store persists the initialized
// flag after first-run folder creation and may be nil. The logger is
// injected; nil means a no-op logger.
func NewEngine(cfg *config.Config, store *config.Store, logger *slog.Logger, dryRun bool) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		cfg:        cfg,
		store:      store,
		classifier: NewClassifier(cfg),
		logger:     logger,
		dryRun:     dryRun,
	}
}

// Run performs the organizing pass: verify the target, create the category
// folders on the first run, then classify and move every regular file in the
// target's top level. Per-file failures are logged and counted, never fatal.
func (e *Engine) Run() (types.RunSummary, error) {
	summary := types.RunSummary{DryRun: e.dryRun}

	target := e.cfg.DownloadsPath
	info, err := os.Stat(target)
	if err != nil {
		return summary, errors.NewFileError("downloads directory does not exist", target, errors.TargetInvalid, err)
	}
	if !info.IsDir() {
		return summary, errors.NewFileError("downloads path is not a directory", target, errors.TargetInvalid, nil)
	}

	e.logger.Debug("scanning downloads directory",
		logging.String("path", target), logging.Bool("dry_run", e.dryRun))

	if err := e.ensureCategoryFolders(target); err != nil {
		return summary, err
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return summary, errors.NewFileError("cannot read downloads directory", target, errors.TargetInvalid, err)
	}

	for _, entry := range entries {
		// Category folders and other directories stay put
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		// Follow symlinks: a link to a regular file is moved, anything else skipped
		fileInfo, err := os.Stat(filepath.Join(target, name))
		if err != nil || !fileInfo.Mode().IsRegular() {
			e.logger.Debug("skipping non-regular entry", logging.String("name", name))
			continue
		}

		result := e.moveFile(target, name)
		summary.Results = append(summary.Results, result)
		if result.Error != nil {
			summary.Failed++
			e.logger.Error(fmt.Sprintf("Failed to move '%s'", name), logging.Error(result.Error))
			continue
		}
		if result.Moved {
			summary.Moved++
		}
	}

	if e.dryRun {
		e.logger.Info(fmt.Sprintf("[DRY RUN] Would move %d file(s)", len(summary.Results)-summary.Failed))
	} else {
		e.logger.Info(fmt.Sprintf("Done. Moved %d file(s), %d failure(s)", summary.Moved, summary.Failed))
	}
	return summary, nil
}

// ensureCategoryFolders creates every category folder on the first run and
// persists the initialized flag. A creation failure aborts the run; a
// persistence failure only warns, folders get re-checked next run. In
// dry-run mode nothing is created or persisted.
func (e *Engine) ensureCategoryFolders(target string) error {
	if e.cfg.Initialized {
		return nil
	}

	e.logger.Info("First run detected. Creating category folders...")

	if e.dryRun {
		for _, name := range e.cfg.CategoryNames() {
			if occupied(filepath.Join(target, name)) {
				continue
			}
			e.logger.Info(fmt.Sprintf("[DRY RUN] Would create folder '%s'", name))
		}
		if e.store != nil {
			e.logger.Info("[DRY RUN] Would update config: initialized = true")
		}
		return nil
	}

	for _, name := range e.cfg.CategoryNames() {
		folder := filepath.Join(target, name)
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return errors.NewFileError("cannot create category folder", folder, errors.TargetInvalid, err)
		}
		e.logger.Info(fmt.Sprintf("Created folder: %s", name))
	}

	e.cfg.Initialized = true
	if e.store == nil {
		return nil
	}
	if err := e.store.Save(e.cfg); err != nil {
		e.logger.Warn("could not persist initialized flag, folders will be re-checked next run",
			logging.Error(err))
		return nil
	}
	e.logger.Info("Config updated: initialized = true")
	return nil
}

// moveFile classifies name and moves it into its category folder, renaming
// when the destination name is taken.
func (e *Engine) moveFile(target, name string) types.MoveResult {
	category := e.classifier.Classify(name)
	dest, renamed := availablePath(filepath.Join(target, category, name))

	result := types.MoveResult{
		Source:      filepath.Join(target, name),
		Destination: dest,
		Category:    category,
		Renamed:     renamed,
	}

	if e.dryRun {
		if renamed {
			e.logger.Info(fmt.Sprintf("[DRY RUN] Would move '%s' to '%s/' as '%s'", name, category, filepath.Base(dest)))
		} else {
			e.logger.Info(fmt.Sprintf("[DRY RUN] Would move '%s' to '%s/'", name, category))
		}
		return result
	}

	if err := move(result.Source, dest); err != nil {
		result.Error = errors.NewFileError("move failed", result.Source, errors.MoveFailed, err)
		return result
	}

	result.Moved = true
	if renamed {
		e.logger.Info(fmt.Sprintf("Moved and renamed: %s -> %s/%s", name, category, filepath.Base(dest)))
	} else {
		e.logger.Info(fmt.Sprintf("Moved: %s -> %s/", name, category))
	}
	return result
}

// move renames src to dest, falling back to copy-and-delete when the rename
// crosses filesystems. The category folder is not created here: moving into
// a missing folder is a per-file failure.
func move(src, dest string) error {
	renameErr := os.Rename(src, dest)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := copyFile(src, dest); err != nil {
			return err
		}
		return os.Remove(src)
	}
	return renameErr
}

// copyFile streams src to dest with default permissions.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
