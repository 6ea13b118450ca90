package eval

import (
	"fmt"
	"math"
	"sort"

	"cardroom/pkg/deck"
)

// LowOrdering selects how low hands are ranked
type LowOrdering int

// LowOrdering constants
const (
	// AceToFive ignores straights and flushes; the wheel is the best low
	AceToFive LowOrdering = iota
	// AceToSix counts straights and flushes against the hand
	AceToSix
)

// LowOptions configures a low-hand evaluation
type LowOptions struct {
	Ordering LowOrdering
	// Qualifier disqualifies any low containing a rank above it (ace plays
	// low, so the common eight-or-better is Qualifier: 8). Zero disables
	// the qualifier.
	Qualifier int
}

// LowResult is the outcome of a low-hand evaluation.
// A hand with no qualifying low has Strength 0 and loses every low-side
// comparison.
type LowResult struct {
	Qualifies bool
	// Strength is comparable between lows; higher is a better low
	Strength int
	// Best is the qualifying five-card subset with substitutions applied
	Best deck.Hand
	// Ranks are the low ranks in descending order, ace as 1
	Ranks []int
}

// EvaluateLow returns the best qualifying low the cards can make, if any.
// Wild cards assume whichever rank produces the best low.
func EvaluateLow(cards deck.Hand, wilds map[deck.Card]bool, opts LowOptions) LowResult {
	if len(cards) < 5 {
		panic(fmt.Sprintf("cannot evaluate %d cards; at least five are required", len(cards)))
	}

	best := LowResult{}
	forEachCombination(len(cards), 5, func(indexes []int) {
		subset := make(deck.Hand, 5)
		wildIdx := make([]int, 0, 5)
		for i, j := range indexes {
			subset[i] = cards[j]
			if wilds[cards[j]] {
				wildIdx = append(wildIdx, i)
			}
		}

		if res := evaluateLowSubset(subset, wildIdx, opts); res.Qualifies && res.Strength > best.Strength {
			best = res
		}
	})

	return best
}

// evaluateLowSubset ranks a five-card subset for low, searching over wild
// rank assignments. Wilds take a suit that cannot complete a flush.
func evaluateLowSubset(subset deck.Hand, wildIdx []int, opts LowOptions) LowResult {
	work := subset.Clone()
	suit := breakFlushSuit(subset, wildIdx)

	best := LowResult{}
	var search func(slot int)
	search = func(slot int) {
		if slot == len(wildIdx) {
			if res := rankLowFive(work, opts); res.Qualifies && res.Strength > best.Strength {
				best = res
			}
			return
		}

		for rank := 2; rank <= deck.Ace; rank++ {
			work[wildIdx[slot]] = deck.Card{Rank: rank, Suit: suit}
			search(slot + 1)
		}
	}
	search(0)

	return best
}

// rankLowFive ranks exactly five cards as a low hand
func rankLowFive(cards deck.Hand, opts LowOptions) LowResult {
	ranks := make([]int, 5)
	for i, c := range cards {
		ranks[i] = c.AceLowRank()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	// any pair disqualifies the low
	for i := 1; i < 5; i++ {
		if ranks[i-1] == ranks[i] {
			return LowResult{}
		}
	}

	if opts.Qualifier > 0 && ranks[0] > opts.Qualifier {
		return LowResult{}
	}

	if opts.Ordering == AceToSix {
		flush := true
		for _, c := range cards[1:] {
			if c.Suit != cards[0].Suit {
				flush = false
				break
			}
		}

		if flush || ranks[0]-ranks[4] == 4 {
			return LowResult{}
		}
	}

	return LowResult{
		Qualifies: true,
		Strength:  int(math.Pow(15, 5)) - calculateStrength(0, ranks),
		Best:      cards.Clone(),
		Ranks:     ranks,
	}
}

// breakFlushSuit returns a suit a wild can take without completing a flush
func breakFlushSuit(subset deck.Hand, wildIdx []int) deck.Suit {
	isWild := make(map[int]bool, len(wildIdx))
	for _, i := range wildIdx {
		isWild[i] = true
	}

	var present deck.Suit
	for i, c := range subset {
		if !isWild[i] {
			present = c.Suit
			break
		}
	}

	for _, s := range deck.Suits {
		if s != present {
			return s
		}
	}

	panic("unreachable")
}
