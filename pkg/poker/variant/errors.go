package variant

import (
	"errors"
	"fmt"
)

// ErrNotEnoughPlayers is returned when a hand is created with fewer than two players
var ErrNotEnoughPlayers = errors.New("you must have at least two players")

// ErrHandComplete is returned when an action is attempted after the hand ended
var ErrHandComplete = errors.New("the hand is complete")

// UnsupportedVariantError is returned for a variant code the engine does not know
type UnsupportedVariantError struct {
	Code Code
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported variant: %s", e.Code)
}

// RuleErrorKind identifies why a player decision was rejected
type RuleErrorKind int

// RuleErrorKind constants
const (
	OutOfTurn RuleErrorKind = iota
	WrongPhase
	TooManyDiscards
	UnknownCard
	InsufficientFunds
	UnsupportedDecision
)

func (k RuleErrorKind) String() string {
	switch k {
	case OutOfTurn:
		return "out-of-turn"
	case WrongPhase:
		return "wrong-phase"
	case TooManyDiscards:
		return "too-many-discards"
	case UnknownCard:
		return "unknown-card"
	case InsufficientFunds:
		return "insufficient-funds"
	case UnsupportedDecision:
		return "unsupported-decision"
	}

	return "unknown"
}

// RuleError is a rule violation caused by player input during a decision
// phase. Hand state is untouched when one is returned.
type RuleError struct {
	Kind    RuleErrorKind
	message string
}

func (e *RuleError) Error() string {
	return e.message
}

func newRuleError(kind RuleErrorKind, format string, a ...interface{}) *RuleError {
	return &RuleError{
		Kind:    kind,
		message: fmt.Sprintf(format, a...),
	}
}

// IsRuleError returns the *RuleError if err is one
func IsRuleError(err error) (*RuleError, bool) {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr, true
	}

	return nil, false
}
