package gamelog

import (
	"testing"

	"cardroom/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	msg := New(5, "bets %d", 100)
	a.NotEmpty(msg.UUID)
	a.Equal([]int64{5}, msg.PlayerIDs)
	a.Equal("bets 100", msg.Message)
	a.False(msg.Time.IsZero())

	general := New(0, "the flop is dealt")
	a.Nil(general.PlayerIDs)
}

func TestNewWithCards(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("2c,3d")
	msg := NewWithCards(1, cards, "draws two")
	a.Equal(cards, msg.Cards)

	// the message owns its copy
	cards[0] = deck.CardFromString("14s")
	a.Equal(deck.CardsFromString("2c,3d"), msg.Cards)
}

func TestLog(t *testing.T) {
	a := assert.New(t)

	log := NewLog()
	log.Sendf(1, "checks")
	log.Sendf(2, "folds")

	batch := <-log.Channel()
	a.Equal(1, len(batch))
	a.Equal("checks", batch[0].Message)

	batch = <-log.Channel()
	a.Equal("folds", batch[0].Message)

	history := log.History()
	a.Equal(2, len(history))
	a.Equal("checks", history[0].Message)
	a.Equal("folds", history[1].Message)
}

func TestLog_fullChannelKeepsHistory(t *testing.T) {
	a := assert.New(t)

	log := NewLog()
	for i := 0; i < 300; i++ {
		log.Sendf(0, "message %d", i)
	}

	a.Equal(300, len(log.History()))
}
