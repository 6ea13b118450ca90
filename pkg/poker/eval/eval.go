// Package eval ranks poker hands into comparable strengths, with optional
// wild-card substitution, a low-hand evaluator, and a hi/lo composition.
package eval

import (
	"fmt"
	"math"

	"cardroom/pkg/deck"
)

// Options configures a high-hand evaluation
type Options struct {
	Ordering Ordering
}

// Result is the outcome of evaluating a hand
type Result struct {
	// Rank is the hand category of the best five cards
	Rank HandRank
	// Strength is a comparable value; a higher strength always wins
	Strength int
	// Best is the winning five-card subset with wild substitutions applied
	Best deck.Hand
	// Substitutions maps each wild card used to the card it stands for
	Substitutions map[deck.Card]deck.Card
}

// Evaluate returns the best five-card hand the cards can make.
// Cards in the wilds set may stand for any card; the substitution chosen is
// the one producing the maximum strength. At least five cards are required.
func Evaluate(cards deck.Hand, wilds map[deck.Card]bool, opts Options) Result {
	if len(cards) < 5 {
		panic(fmt.Sprintf("cannot evaluate %d cards; at least five are required", len(cards)))
	}

	best := Result{Strength: -1}
	forEachCombination(len(cards), 5, func(indexes []int) {
		subset := make(deck.Hand, 5)
		wildIdx := make([]int, 0, 5)
		for i, j := range indexes {
			subset[i] = cards[j]
			if wilds[cards[j]] {
				wildIdx = append(wildIdx, i)
			}
		}

		if res := evaluateSubset(subset, wildIdx, opts); res.Strength > best.Strength {
			best = res
		}
	})

	return best
}

// evaluateSubset ranks a five-card subset, searching over wild substitutions.
// Each wild slot tries every rank paired with the suit that maximizes the
// subset's flush potential; suits only matter for flushes, so no stronger
// assignment exists outside that candidate set.
func evaluateSubset(subset deck.Hand, wildIdx []int, opts Options) Result {
	if len(wildIdx) == 0 {
		rank, tiebreaks := rankFive(subset)
		return Result{
			Rank:          rank,
			Strength:      calculateStrength(opts.Ordering.ordinal(rank), tiebreaks),
			Best:          subset.Clone(),
			Substitutions: map[deck.Card]deck.Card{},
		}
	}

	suit := flushSuit(subset, wildIdx)
	work := subset.Clone()
	best := Result{Strength: -1}

	var search func(slot int)
	search = func(slot int) {
		if slot == len(wildIdx) {
			rank, tiebreaks := rankFive(work)
			strength := calculateStrength(opts.Ordering.ordinal(rank), tiebreaks)
			if strength > best.Strength {
				subs := make(map[deck.Card]deck.Card, len(wildIdx))
				for _, wi := range wildIdx {
					subs[subset[wi]] = work[wi]
				}

				best = Result{
					Rank:          rank,
					Strength:      strength,
					Best:          work.Clone(),
					Substitutions: subs,
				}
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

// flushSuit returns the most common suit among the subset's non-wild cards
func flushSuit(subset deck.Hand, wildIdx []int) deck.Suit {
	isWild := make(map[int]bool, len(wildIdx))
	for _, i := range wildIdx {
		isWild[i] = true
	}

	counts := make(map[deck.Suit]int)
	for i, c := range subset {
		if !isWild[i] {
			counts[c.Suit]++
		}
	}

	best := deck.Spades
	bestCount := -1
	for _, s := range deck.Suits {
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}

	return best
}

// calculateStrength packs a rank ordinal and up to five tiebreak values into
// a single comparable integer (base 15, most significant first)
func calculateStrength(ordinal int, tiebreaks []int) int {
	fiveValues := make([]int, 5)
	copy(fiveValues, tiebreaks)

	strength := math.Pow(15, 5) * float64(ordinal)
	for i := 0; i < 5; i++ {
		strength += math.Pow(15, float64(i)) * float64(fiveValues[4-i])
	}

	return int(strength)
}

// forEachCombination calls fn with each k-subset of [0, n) in index order
func forEachCombination(n, k int, fn func(indexes []int)) {
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		// advance to the next combination
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
