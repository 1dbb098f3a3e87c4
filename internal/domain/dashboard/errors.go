package dashboard

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection indicates a selector value outside its fixed enumeration.
var ErrInvalidSelection = errors.New("invalid selection")

type InvalidSelectionError struct {
	Field string
	Value string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidSelection.Error(), e.Field, e.Value)
}

func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}
