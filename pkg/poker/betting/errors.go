package betting

import (
	"errors"
	"fmt"
)

// ErrRoundOver is an error when an action is attempted after the round completed
var ErrRoundOver = errors.New("betting round is over")

// RuleErrorKind identifies why an action was rejected
type RuleErrorKind int

// RuleErrorKind constants
const (
	OutOfTurn RuleErrorKind = iota
	IllegalCheck
	NothingToCall
	BetNotAllowed
	BetTooSmall
	RaiseTooSmall
	WrongIncrement
	RaiseCapReached
	InsufficientFunds
	UnsupportedAction
)

func (k RuleErrorKind) String() string {
	switch k {
	case OutOfTurn:
		return "out-of-turn"
	case IllegalCheck:
		return "illegal-check"
	case NothingToCall:
		return "nothing-to-call"
	case BetNotAllowed:
		return "bet-not-allowed"
	case BetTooSmall:
		return "bet-too-small"
	case RaiseTooSmall:
		return "raise-too-small"
	case WrongIncrement:
		return "wrong-increment"
	case RaiseCapReached:
		return "raise-cap-reached"
	case InsufficientFunds:
		return "insufficient-funds"
	case UnsupportedAction:
		return "unsupported-action"
	}

	return "unknown"
}

// RuleError is a rule violation caused by player input. It is returned, never
// panicked, and the round state is untouched when one is returned.
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

// IsRuleError returns the RuleError if err is one
func IsRuleError(err error) (*RuleError, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re, true
	}

	return nil, false
}
