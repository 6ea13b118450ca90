package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	act, err := FromString("raise")
	a.NoError(err)
	a.Equal(Raise, act)

	_, err = FromString("nope")
	a.EqualError(err, "unknown action for identifier: nope")
}

func TestAction_IsValid(t *testing.T) {
	a := assert.New(t)

	a.True(Check.IsValid())
	a.True(AllIn.IsValid())
	a.False(Action("shove").IsValid())
}

func TestAction_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := Raise.MarshalJSON()
	a.NoError(err)
	a.JSONEq(`{"id":"raise","name":"Raise"}`, string(b))
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)

	a.Equal("checked", Check.LogMessage(0))
	a.Equal("called ${50}", Call.LogMessage(50))
	a.Equal("bet ${100}", Bet.LogMessage(100))
	a.Equal("raised to ${200}", Raise.LogMessage(200))
	a.Equal("went all-in for ${75}", AllIn.LogMessage(75))
	a.Equal("folded", Fold.LogMessage(0))
}
