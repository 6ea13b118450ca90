package action

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take
type Action string

// action constants
const (
	Check   Action = "check"
	Call    Action = "call"
	Bet     Action = "bet"
	Raise   Action = "raise"
	Fold    Action = "fold"
	AllIn   Action = "all-in"
	Discard Action = "discard"
	Buy     Action = "buy"
	Stay    Action = "stay"
	Drop    Action = "drop"
)

var allowedActions = map[Action]bool{
	Check:   true,
	Call:    true,
	Bet:     true,
	Raise:   true,
	Fold:    true,
	AllIn:   true,
	Discard: true,
	Buy:     true,
	Stay:    true,
	Drop:    true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	case Fold:
		return "Fold"
	case AllIn:
		return "All-in"
	case Discard:
		return "Discard"
	case Buy:
		return "Buy"
	case Stay:
		return "Stay"
	case Drop:
		return "Drop"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case Fold:
		return "folded"
	case AllIn:
		return fmt.Sprintf("went all-in for ${%d}", amount)
	case Discard:
		return fmt.Sprintf("discarded %d", amount)
	case Buy:
		return fmt.Sprintf("bought a card for ${%d}", amount)
	case Stay:
		return "stayed in"
	case Drop:
		return "dropped out"
	}

	return ""
}
