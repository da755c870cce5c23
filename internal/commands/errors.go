package commands

import (
	"errors"
	"fmt"
)

// Failure is a command outcome the user should see verbatim. It unwraps to one
// of the movies error kinds.
type Failure struct {
	Kind    error
	Message string
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Kind }

func fail(kind error, format string, args ...any) error {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Message
	}
	return "An unexpected error occurred:\n" + err.Error()
}
