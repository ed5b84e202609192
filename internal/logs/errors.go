package logs

import "fmt"

// Missing files and directories are not errors here: read paths treat
// them as empty and PruneHistory reports a missing directory in its
// result, so only real I/O failures need a type.

// IOError wraps a filesystem failure (permissions, disk full). It always
// aborts the operation that raised it; no partial state is left behind.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
