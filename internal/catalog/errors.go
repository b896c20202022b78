package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownDish is matched by every lookup failure.
var ErrUnknownDish = errors.New("unknown dish")

// UnknownDishError reports the identifier that was not found.
type UnknownDishError struct {
	DishID string
}

func (e *UnknownDishError) Error() string {
	return fmt.Sprintf("%s: %q is not in the catalog", ErrUnknownDish, e.DishID)
}

func (e *UnknownDishError) Unwrap() error { return ErrUnknownDish }
