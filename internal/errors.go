package internal

import "errors"

// Error kinds shared by all layers. Callers match them with errors.Is.
var (
	// ErrBackingStoreMissing means the root document or the documentation root is not configured or does not exist.
	ErrBackingStoreMissing = errors.New("backing store missing")
	// ErrDocumentNotFound means an external source file (or folder) to be indexed does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrPathIsSection means a document was about to be placed at a path which denotes a section.
	ErrPathIsSection = errors.New("path is a section")
	// ErrInvalidTreeShape means the tree cannot be descended as requested or the stored nav is malformed.
	ErrInvalidTreeShape = errors.New("invalid tree shape")
	// ErrWriteFailure means a logical change succeeded in memory but could not be persisted.
	ErrWriteFailure = errors.New("write failure")
)
