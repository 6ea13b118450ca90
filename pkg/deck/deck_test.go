package deck

import (
	"testing"

	"cardroom/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(0))
	a.Equal(52, d.CardsLeft())

	seen := make(map[Card]bool)
	for _, c := range d.Cards {
		seen[c] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New(rng.NewSeeded(42))
	d1.Shuffle()

	d2 := New(rng.NewSeeded(42))
	d2.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode())

	d3 := New(rng.NewSeeded(43))
	d3.Shuffle()
	a.NotEqual(d1.HashCode(), d3.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(0))
	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	for i := 0; i < 52; i++ {
		_, err := d.Draw()
		a.NoError(err)
	}

	a.Equal(0, d.CardsLeft())
	_, err := d.Draw()
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_Remove(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(0))
	n := d.Remove(CardFromString("2c"), CardFromString("14s"))
	a.Equal(2, n)
	a.Equal(50, d.CardsLeft())
	a.False(d.Cards.HasCard(CardFromString("2c")))

	// already removed
	a.Equal(0, d.Remove(CardFromString("2c")))
}

func TestDeck_ShuffleDiscards(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(1))
	discards := CardsFromString("2c,3c,4c,5c,6c")
	d.ShuffleDiscards(discards)

	a.Equal(5, d.CardsLeft())
	for _, c := range discards {
		a.True(d.Cards.HasCard(c))
	}
}
