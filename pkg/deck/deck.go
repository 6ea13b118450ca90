package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"cardroom/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
// The random source is injected so shuffles can be reproduced in tests.
type Deck struct {
	Cards Hand `json:"cards"`
	gen   rng.Generator
}

// New returns a new deck of cards using the provided random source.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(gen rng.Generator) *Deck {
	d := &Deck{
		gen: gen,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make(Hand, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
func (d *Deck) Shuffle() {
	// we always want to shuffle from an unshuffled deck
	if len(d.Cards) != 52 {
		d.buildDeck()
	}

	rng.Shuffle(d.gen, len(d.Cards), d.Cards.Swap)
}

// ShuffleDiscards will replace the existing deck with the cards specified
func (d *Deck) ShuffleDiscards(discards Hand) {
	cards := discards.Clone()
	rng.Shuffle(d.gen, len(cards), cards.Swap)

	d.Cards = cards
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Remove takes the specified cards out of the deck, returning how many were found.
// Useful for dealing a known scenario or excluding dead cards.
func (d *Deck) Remove(cards ...Card) int {
	removed := 0
	for _, card := range cards {
		removed += d.Cards.Discard(card, 1)
	}

	return removed
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
