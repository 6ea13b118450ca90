// Package gamelog provides structured hand-log messages for games to
// report what happened to the surrounding layer.
package gamelog

import (
	"fmt"
	"time"

	"cardroom/pkg/deck"

	"github.com/google/uuid"
)

// Message is a single hand-log entry.
// If PlayerIDs is empty, the message is a general statement; otherwise the
// caller renders it against the named players.
type Message struct {
	UUID      string    `json:"uuid"`
	PlayerIDs []int64   `json:"playerIds"`
	Cards     deck.Hand `json:"cards"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

// New returns a message attributed to the player. A playerID of 0 makes a
// general statement.
func New(playerID int64, format string, a ...interface{}) *Message {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &Message{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// NewWithCards returns a message with cards attached
func NewWithCards(playerID int64, cards deck.Hand, format string, a ...interface{}) *Message {
	msg := New(playerID, format, a...)
	msg.Cards = cards.Clone()

	return msg
}

// Log accumulates a hand's messages and streams them over a channel
type Log struct {
	ch      chan []*Message
	history []*Message
}

// NewLog instantiates a Log
func NewLog() *Log {
	return &Log{
		ch: make(chan []*Message, 256),
	}
}

// Send records the messages and queues them for delivery. If the channel
// buffer is full the messages are still kept in the history.
func (l *Log) Send(messages ...*Message) {
	l.history = append(l.history, messages...)

	select {
	case l.ch <- messages:
	default:
	}
}

// Sendf is shorthand for Send(New(playerID, format, a...))
func (l *Log) Sendf(playerID int64, format string, a ...interface{}) {
	l.Send(New(playerID, format, a...))
}

// Channel returns the channel messages are delivered on
func (l *Log) Channel() <-chan []*Message {
	return l.ch
}

// History returns every message sent this hand, in order
func (l *Log) History() []*Message {
	return l.history
}
