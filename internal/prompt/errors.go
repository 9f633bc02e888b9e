package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is returned when a platform or platform template
	// id does not resolve. Callers treat it as "no output", not a failure.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUseCaseNotFound is returned for an unknown use-case id.
	ErrUseCaseNotFound = errors.New("use case not found")
)

// ParseError describes a malformed custom template. Offset is the byte
// position of the offending token in the template string.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template parse error at offset %d: %s", e.Offset, e.Message)
}
