package logs

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// PruneResult reports what PruneHistory did. DirMissing distinguishes
// "directory does not exist" from "deleted zero because already pruned".
type PruneResult struct {
	Deleted    int
	DirMissing bool
}

// PruneHistory deletes old history files from dir. Files whose base name
// matches pattern are sorted by modification time descending; the first
// keep files are retained and the rest deleted. keep == 0 deletes every
// matching file. A missing directory is not an error.
func PruneHistory(dir string, keep int, pattern string) (PruneResult, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return PruneResult{DirMissing: true}, nil
	}
	if err != nil {
		return PruneResult{}, &IOError{Op: "readdir", Path: dir, Err: err}
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var matches []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return PruneResult{}, err
		}
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return PruneResult{}, &IOError{Op: "stat", Path: filepath.Join(dir, entry.Name()), Err: err}
		}
		matches = append(matches, candidate{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].modTime.After(matches[j].modTime)
	})

	if keep < 0 {
		keep = 0
	}
	if keep >= len(matches) {
		return PruneResult{}, nil
	}

	var res PruneResult
	for _, c := range matches[keep:] {
		if err := os.Remove(c.path); err != nil {
			return res, &IOError{Op: "remove", Path: c.path, Err: err}
		}
		res.Deleted++
	}
	return res, nil
}
