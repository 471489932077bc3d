package blackjack

import "errors"

var (
	// ErrInvalidAction is returned when an input is not valid for the
	// current phase. No state is changed.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInternal marks an engine invariant violation, such as the deck
	// running out mid-round. The round is aborted.
	ErrInternal = errors.New("internal engine error")
)
