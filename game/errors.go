package game

import "errors"

// Move-validation sentinel errors. Invalid references are rejected before
// any mutation; the caller is responsible for re-prompting.
var (
	ErrInvalidHandIndex = errors.New("hand index out of range")
	ErrEmptyHand        = errors.New("hand is empty")
)
