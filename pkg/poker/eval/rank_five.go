package eval

import (
	"sort"

	"cardroom/pkg/deck"
)

// rankFive categorizes exactly five cards and returns the rank along with
// the tiebreak values, most significant first.
func rankFive(cards deck.Hand) (HandRank, []int) {
	if len(cards) != 5 {
		panic("rankFive requires exactly five cards")
	}

	ranks := make([]int, 5)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straightHigh := straightHighRank(ranks)

	if flush && straightHigh > 0 {
		if straightHigh == deck.Ace {
			return RoyalFlush, []int{}
		}
		return StraightFlush, []int{straightHigh}
	}

	// group by rank, ordered by count then rank
	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}

	type group struct {
		rank  int
		count int
	}
	groups := make([]group, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, group{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	switch {
	case groups[0].count >= 4:
		kicker := groups[0].rank
		if len(groups) > 1 {
			kicker = groups[1].rank
		}
		return FourOfAKind, []int{groups[0].rank, kicker}
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count >= 2:
		return FullHouse, []int{groups[0].rank, groups[1].rank}
	case flush:
		return Flush, ranks
	case straightHigh > 0:
		return Straight, []int{straightHigh}
	case groups[0].count == 3:
		return ThreeOfAKind, []int{groups[0].rank, groups[1].rank, groups[2].rank}
	case groups[0].count == 2 && groups[1].count == 2:
		return TwoPair, []int{groups[0].rank, groups[1].rank, groups[2].rank}
	case groups[0].count == 2:
		return OnePair, []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}
	}

	return HighCard, ranks
}

// straightHighRank returns the high card of a straight formed by the five
// ranks (sorted descending), or 0 if they do not form one. The wheel
// (A-2-3-4-5) returns 5.
func straightHighRank(ranks []int) int {
	for i := 1; i < 5; i++ {
		if ranks[i-1] == ranks[i] {
			return 0
		}
	}

	if ranks[0]-ranks[4] == 4 {
		return ranks[0]
	}

	// wheel: ace plays low
	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[1]-ranks[4] == 3 {
		return 5
	}

	return 0
}
