package eval

import "fmt"

// HandRank is a poker hand category, i.e., royal flush
type HandRank int

// Constants for HandRank
const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand rank
func (h HandRank) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown hand rank: %d", h))
	}
}

// Ordering selects the variant-specific strength table
type Ordering int

// Ordering constants
const (
	// Classic is the standard ordering
	Classic Ordering = iota
	// ShortDeck ranks a flush above a full house
	ShortDeck
)

// ordinal returns the relative strength of the rank under the ordering
func (o Ordering) ordinal(h HandRank) int {
	if o == ShortDeck {
		switch h {
		case Flush:
			return int(FullHouse)
		case FullHouse:
			return int(Flush)
		}
	}

	return int(h)
}
