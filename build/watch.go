package build

import (
	"context"
	"errors"
	"jsspec/logging"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleTime is how long the watcher waits after the last change to an input
// before rebuilding.  Editors and dump generators usually touch a file several
// times when saving it.
const settleTime = 100 * time.Millisecond

// Watch builds the project and then rebuilds it every time one of its syntax
// dumps is written, created or renamed.  It returns when the context is
// cancelled or the watcher fails.
func Watch(ctx context.Context, c *Compiler) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs := c.watchDirs()
	if len(dirs) == 0 {
		return errors.New("none of the input directories of the project exist")
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	c.Compile()

	settle := time.NewTimer(settleTime)
	if !settle.Stop() {
		<-settle.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 && c.isInput(ev.Name) {
				settle.Reset(settleTime)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			return err
		case <-settle.C:
			logging.Reset()
			c.Compile()
		}
	}
}

// watchDirs returns the existing directories that can hold the project's
// inputs.  The directory part of an input pattern may itself be a glob, so it
// is expanded like the pattern is.  The directories are watched rather than
// the files so that dumps which are replaced or newly created are seen.
func (c *Compiler) watchDirs() []string {
	seen := make(map[string]bool)
	var dirs []string

	for _, pattern := range c.proj.InputPatterns() {
		matches, err := filepath.Glob(filepath.Dir(pattern))
		if err != nil {
			continue
		}

		for _, dir := range matches {
			if finfo, err := os.Stat(dir); err != nil || !finfo.IsDir() {
				continue
			}

			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
	}

	return dirs
}

// isInput reports whether a path is matched by one of the project's inputs
func (c *Compiler) isInput(path string) bool {
	for _, pattern := range c.proj.InputPatterns() {
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
	}

	return false
}
