// Package codelabs copies pre-rendered codelab directories from the
// documentation source tree into the built site.
//
// Layout:
//
//	<docs_dir>/codelabs/<category>/<codelab>/...  ->  <site_dir>/codelabs/<category>/<codelab>/...
//
// Every codelab directory found under a known category replaces its
// destination counterpart wholesale. Destination entries without a source
// counterpart are left alone.
package codelabs

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	cerrors "git.home.luguber.info/inful/codelabcopy/internal/errors"
	"git.home.luguber.info/inful/codelabcopy/internal/fsutil"
	"git.home.luguber.info/inful/codelabcopy/internal/logfields"
	"git.home.luguber.info/inful/codelabcopy/internal/metrics"
)

// DirName is the directory under both roots that holds codelab categories.
const DirName = "codelabs"

// Copier runs the codelab copy step. It is not safe for concurrent use
// against the same destination.
type Copier struct {
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewCopier creates a copier that logs to logger. A nil logger discards output.
func NewCopier(logger *slog.Logger) *Copier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Copier{
		logger:   logger,
		recorder: metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder.
func (c *Copier) WithRecorder(r metrics.Recorder) *Copier {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	c.recorder = r
	return c
}

// Run copies every codelab directory of every known category from
// sourceRoot/codelabs into destRoot/codelabs and returns how many were copied.
//
// A missing source codelabs directory is not an error: Run logs a warning and
// returns 0 without touching destRoot. Any filesystem failure aborts the
// remaining work and is returned.
func (c *Copier) Run(sourceRoot, destRoot string) (int, error) {
	start := time.Now()
	count, outcome, err := c.run(sourceRoot, destRoot)
	c.recorder.ObserveRunDuration(time.Since(start))
	c.recorder.IncRunOutcome(outcome)
	if err == nil {
		c.recorder.SetLastRunCopied(count)
	}
	return count, err
}

func (c *Copier) run(sourceRoot, destRoot string) (int, metrics.OutcomeLabel, error) {
	srcRoot := filepath.Join(sourceRoot, DirName)
	dstRoot := filepath.Join(destRoot, DirName)

	info, err := os.Stat(srcRoot)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c.logger.Warn("Codelabs directory not found", logfields.Path(srcRoot))
		return 0, metrics.OutcomeMissing, nil
	case err != nil:
		return 0, metrics.OutcomeFailed, cerrors.FileSystemError("stat", srcRoot, err)
	case !info.IsDir():
		c.logger.Warn("Codelabs path is not a directory", logfields.Path(srcRoot))
		return 0, metrics.OutcomeMissing, nil
	}

	c.logger.Info("Copying codelab HTML directories", logfields.Destination(dstRoot))

	count := 0
	for _, category := range Categories {
		n, err := c.copyCategory(category, srcRoot, dstRoot)
		count += n
		if err != nil {
			return count, metrics.OutcomeFailed, err
		}
	}

	if count == 0 {
		c.logger.Warn("No codelab directories found to copy", logfields.Source(srcRoot))
		return 0, metrics.OutcomeEmpty, nil
	}
	c.logger.Info("Successfully copied codelabs", logfields.Count(count))
	return count, metrics.OutcomeCopied, nil
}

// copyCategory mirrors each codelab directory of one category. It returns
// the number copied before any failure.
func (c *Copier) copyCategory(category Category, srcRoot, dstRoot string) (int, error) {
	srcDir := filepath.Join(srcRoot, string(category))
	dstDir := filepath.Join(dstRoot, string(category))

	exists, err := fsutil.Exists(srcDir)
	if err != nil {
		return 0, cerrors.FileSystemError("stat", srcDir, err)
	}
	if !exists {
		return 0, nil
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return 0, cerrors.FileSystemError("mkdir", dstDir, err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, cerrors.FileSystemError("read directory", srcDir, err)
	}

	copied := 0
	for _, entry := range entries {
		src := filepath.Join(srcDir, entry.Name())
		isDir, err := fsutil.IsDir(src)
		if err != nil {
			return copied, cerrors.FileSystemError("stat", src, err)
		}
		if !isDir {
			continue
		}

		if err := c.copyCodelab(src, filepath.Join(dstDir, entry.Name())); err != nil {
			return copied, err.WithContext("category", string(category))
		}

		c.logger.Info("Copied codelab",
			logfields.Category(string(category)),
			logfields.Codelab(entry.Name()),
			logfields.Path(string(category)+"/"+entry.Name()+"/"))
		c.recorder.IncCodelabCopied(string(category))
		copied++
	}
	return copied, nil
}

// copyCodelab replaces dst with a fresh copy of src so files dropped from
// the source since the previous build disappear from the site too.
func (c *Copier) copyCodelab(src, dst string) *cerrors.CodelabError {
	if _, err := os.Lstat(dst); err == nil {
		if err := os.RemoveAll(dst); err != nil {
			return cerrors.FileSystemError("remove", dst, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return cerrors.FileSystemError("stat", dst, err)
	}

	if err := fsutil.CopyDir(src, dst); err != nil {
		return cerrors.FileSystemError("copy", src, err).WithContext("destination", dst)
	}
	return nil
}
