package deck

import "strings"

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard will remove up to max copies of the specified card and return the
// number removed. A max of 0 removes every copy.
func (h *Hand) Discard(card Card, max int) int {
	count := 0

	newHand := make(Hand, 0, len(*h))
	for _, c := range *h {
		if c.Equal(card) && (max == 0 || count < max) {
			count++
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return count
}

// FirstCard returns the first card in the hand
// The second return value is false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

// LastCard returns the last card in the hand
// The second return value is false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// CardSet returns the hand as a set for membership checks
func (h Hand) CardSet() map[Card]bool {
	set := make(map[Card]bool, len(h))
	for _, c := range h {
		set[c] = true
	}

	return set
}

// SortByRank sorts cards ascending by rank
type SortByRank Hand

func (s SortByRank) Len() int {
	return len(s)
}

func (s SortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s SortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
