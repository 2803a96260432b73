package snapshotpolicy

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fileState is the watcher's record of one file between polls.
type fileState struct {
	size    int64
	modTime time.Time
}

// changeWatcher polls a set of paths and reports the number of bytes that
// changed since the previous scan. It is deliberately poll-based: the
// interval is bounded by the policy's change_detection_interval, and a
// missed intermediate write only delays, never loses, the trigger.
type changeWatcher struct {
	watchPaths      []string
	excludePaths    []string
	filePatterns    []string
	excludePatterns []string

	primed bool
	known  map[string]fileState
}

func newChangeWatcher(watch, excludePaths, patterns, excludePatterns []string) *changeWatcher {
	return &changeWatcher{
		watchPaths:      watch,
		excludePaths:    excludePaths,
		filePatterns:    patterns,
		excludePatterns: excludePatterns,
		known:           make(map[string]fileState),
	}
}

// scan walks the watch paths and returns the bytes attributable to files
// that appeared, changed, or disappeared since the last scan. The first
// scan primes the baseline and reports zero.
func (w *changeWatcher) scan() int64 {
	first := !w.primed
	w.primed = true
	seen := make(map[string]fileState)
	var changed int64

	for _, root := range w.watchPaths {
		_ = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return nil // unreadable entries don't abort the scan
			}
			if fi.IsDir() {
				if w.excludedPath(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if !w.matches(path) {
				return nil
			}
			cur := fileState{size: fi.Size(), modTime: fi.ModTime()}
			seen[path] = cur
			prev, existed := w.known[path]
			switch {
			case !existed:
				changed += cur.size
			case prev.modTime != cur.modTime || prev.size != cur.size:
				changed += cur.size
			}
			return nil
		})
	}

	// Deleted files count their last known size as change.
	for path, prev := range w.known {
		if _, ok := seen[path]; !ok {
			changed += prev.size
		}
	}

	w.known = seen
	if first {
		return 0
	}
	return changed
}

// matches applies the path allow/deny lists and the glob include/exclude
// patterns to one file path.
func (w *changeWatcher) matches(path string) bool {
	if w.excludedPath(path) {
		return false
	}
	base := filepath.Base(path)
	for _, pattern := range w.excludePatterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return false
		}
	}
	if len(w.filePatterns) == 0 {
		return true
	}
	for _, pattern := range w.filePatterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func (w *changeWatcher) excludedPath(path string) bool {
	for _, ex := range w.excludePaths {
		if path == ex || strings.HasPrefix(path, ex+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
