package docwriter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/n2code/docwriter/internal"
)

type CommandError struct {
	message string
	cause   error
}

func (e *CommandError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *CommandError) Unwrap() error {
	return e.cause
}

func newCommandError(message string, cause error) *CommandError {
	return &CommandError{message: message, cause: cause}
}

// Error kinds, match with errors.Is
var (
	ErrBackingStoreMissing = internal.ErrBackingStoreMissing
	ErrDocumentNotFound    = internal.ErrDocumentNotFound
	ErrPathIsSection       = internal.ErrPathIsSection
	ErrInvalidTreeShape    = internal.ErrInvalidTreeShape
	ErrWriteFailure        = internal.ErrWriteFailure
)

var ErrNotASection = errors.New("path does not lead to a section")
