package store

import (
	"errors"
	"fmt"
)

// ErrItemNotFound signals a data-integrity problem: a check-in that
// targets an item the system never registered. Unlike the boolean
// rejections, callers must surface it distinctly.
var ErrItemNotFound = errors.New("item not found")

func NewItemNotFoundError(itemName string) error {
	return fmt.Errorf("%w: cannot check in %s, it does not exist in the system", ErrItemNotFound, itemName)
}

func IsItemNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}
