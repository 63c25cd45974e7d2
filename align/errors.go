package align

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches any [*InvalidInputError] with [errors.Is].
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError indicates that the input text cannot be aligned.
// This is the case when the text is empty or contains only whitespace,
// or when there are not enough lines for the requested mode.
type InvalidInputError struct {
	// Reason describes what was wrong with the input.
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %v", e.Reason)
}

// Is reports whether target is [ErrInvalidInput].
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarkerNotFoundError is returned in [ModeMark]
// when the indicator line does not contain the marker character.
type MarkerNotFoundError struct {
	// Mark is the character that was searched for.
	Mark rune

	// Line is the indicator line that was searched.
	Line string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("marker %q not found in indicator line %q", e.Mark, e.Line)
}
