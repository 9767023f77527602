package mirror

import "fmt"

// Operations reported in Error.Op
const (
	OpCreateDir   = "mkdir"
	OpWriteStub   = "stub"
	OpReadSource  = "read"
	OpCopy        = "copy"
	OpRemove      = "remove"
	OpRename      = "rename"
	OpPurge       = "purge"
	OpInspectPath = "stat"
)

// Error records a failed filesystem operation of the mirror and the storage-relative path it concerned.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(op string, path string, err error) error {
	return &Error{Op: op, Path: path, Err: err}
}
