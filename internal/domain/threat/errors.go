package threat

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested scenario is not part of the catalog.
var ErrNotFound = errors.New("scenario not found")

// NotFoundError carries the name that failed the lookup.
type NotFoundError struct {
	Name ScenarioName
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound.Error(), string(e.Name))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
