package numwords

import (
	"errors"
	"fmt"
)

// Validation errors. All are returned wrapped with context; test with errors.Is.
var (
	ErrInvalidInput     = errors.New("numwords: input is not valid UTF-8 text")
	ErrInputTooLarge    = errors.New("numwords: input exceeds 1 MiB")
	ErrPhraseTooLong    = errors.New("numwords: phrase has too many words")
	ErrEmptyInput       = errors.New("numwords: no words provided")
	ErrNoNumberWords    = errors.New("numwords: no number words provided")
	ErrDuplicateDecimal = errors.New("numwords: more than one decimal marker")
	ErrDuplicateSign    = errors.New("numwords: more than one sign marker")
	ErrMisplacedSign    = errors.New("numwords: sign marker must come before the number")
	ErrUnrecognizedWord = errors.New("numwords: unrecognized word")
	ErrMixedStandard    = errors.New("numwords: phrase mixes South-Asian and Western magnitudes")
)

// UnrecognizedWordError reports a token that is neither a vocabulary word
// nor a literal number.
type UnrecognizedWordError struct {
	Word string
}

func (e *UnrecognizedWordError) Error() string {
	return fmt.Sprintf("numwords: unrecognized word %q", truncate(e.Word))
}

// Unwrap lets errors.Is match ErrUnrecognizedWord.
func (e *UnrecognizedWordError) Unwrap() error { return ErrUnrecognizedWord }

// RunError reports a number-word run in free text that failed to parse.
// Start and End are byte offsets of the run in the input.
type RunError struct {
	Text  string
	Start int
	End   int
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%v (in %q at [%d:%d])", e.Err, truncate(e.Text), e.Start, e.End)
}

func (e *RunError) Unwrap() error { return e.Err }

// truncate keeps error messages bounded for oversized tokens.
func truncate(s string) string {
	const maxErrLen = 50
	if len(s) > maxErrLen {
		return s[:maxErrLen] + "..."
	}
	return s
}
