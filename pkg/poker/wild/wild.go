// Package wild determines which cards are wild for a hand.
// Rule sets are pure: the wild set is recomputed from the cards in the
// specific hand every time, never cached across hands.
package wild

import (
	"fmt"
	"math"
	"strings"

	"cardroom/pkg/deck"
)

// RuleSet determines which cards in a hand are wild
type RuleSet interface {
	// Name should return the display name of the rule
	Name() string

	// DetermineWildCards returns the set of wild cards for the given hand
	DetermineWildCards(cards deck.Hand) map[deck.Card]bool
}

// None is a rule set with no wild cards
type None struct{}

// Name returns "No Wilds"
func (n None) Name() string {
	return "No Wilds"
}

// DetermineWildCards returns an empty set
func (n None) DetermineWildCards(cards deck.Hand) map[deck.Card]bool {
	return map[deck.Card]bool{}
}

// FixedRank makes every card of the configured ranks wild (i.e., deuces wild,
// or threes and nines wild)
type FixedRank struct {
	ranks []int
}

// NewFixedRank returns a fixed-rank rule set
func NewFixedRank(ranks ...int) *FixedRank {
	if len(ranks) == 0 {
		panic("at least one wild rank is required")
	}

	for _, rank := range ranks {
		if rank < 2 || rank > deck.Ace {
			panic(fmt.Sprintf("invalid wild rank: %d", rank))
		}
	}

	return &FixedRank{ranks: ranks}
}

// Name returns a name like "2s Wild"
func (f *FixedRank) Name() string {
	names := make([]string, len(f.ranks))
	for i, rank := range f.ranks {
		names[i] = fmt.Sprintf("%ds", rank)
	}

	return strings.Join(names, " and ") + " Wild"
}

// DetermineWildCards returns every card matching a configured rank
func (f *FixedRank) DetermineWildCards(cards deck.Hand) map[deck.Card]bool {
	wilds := make(map[deck.Card]bool)
	for _, card := range cards {
		for _, rank := range f.ranks {
			if card.Rank == rank {
				wilds[card] = true
			}
		}
	}

	return wilds
}

// DynamicLowest makes the lowest-ranked card in the hand wild. Every card
// of that rank is wild, so a pair of the low rank yields two wilds.
type DynamicLowest struct{}

// Name returns "Low Card Wild"
func (d DynamicLowest) Name() string {
	return "Low Card Wild"
}

// DetermineWildCards returns every card matching the hand's lowest rank
func (d DynamicLowest) DetermineWildCards(cards deck.Hand) map[deck.Card]bool {
	wilds := make(map[deck.Card]bool)
	if len(cards) == 0 {
		return wilds
	}

	lowestRank := math.MaxInt32
	for _, card := range cards {
		if card.Rank < lowestRank {
			lowestRank = card.Rank
		}
	}

	for _, card := range cards {
		if card.Rank == lowestRank {
			wilds[card] = true
		}
	}

	return wilds
}

// Hybrid combines a fixed wild rank with the dynamic-lowest rule
type Hybrid struct {
	fixed *FixedRank
}

// NewHybrid returns a hybrid rule set with the given fixed wild rank
func NewHybrid(rank int) *Hybrid {
	return &Hybrid{fixed: NewFixedRank(rank)}
}

// Name returns a name like "2s and Low Card Wild"
func (h *Hybrid) Name() string {
	return fmt.Sprintf("%ds and Low Card Wild", h.fixed.ranks[0])
}

// DetermineWildCards returns the fixed-rank wilds plus the lowest rank
// among the remaining cards. The dynamic rule only considers cards the
// fixed rule left natural, so a hand whose lowest rank is the fixed rank
// still gets a second wild rank.
func (h *Hybrid) DetermineWildCards(cards deck.Hand) map[deck.Card]bool {
	wilds := h.fixed.DetermineWildCards(cards)

	natural := make(deck.Hand, 0, len(cards))
	for _, card := range cards {
		if !wilds[card] {
			natural = append(natural, card)
		}
	}

	for card := range (DynamicLowest{}).DetermineWildCards(natural) {
		wilds[card] = true
	}

	return wilds
}
