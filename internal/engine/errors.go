package engine

import "fmt"

// ValidationError reports malformed batch input. It is raised before any
// parsing is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UnsupportedLanguageError reports a file whose language could not be
// resolved, or resolves to a language with no registered parser. It aborts
// the whole batch.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s", e.Language)
}

// FileTooLargeError reports a file exceeding the byte-size limit. It aborts
// the whole batch.
type FileTooLargeError struct {
	Name       string
	SizeBytes  int
	LimitBytes int
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s is %d bytes, exceeds limit of %d bytes",
		e.Name, e.SizeBytes, e.LimitBytes)
}
