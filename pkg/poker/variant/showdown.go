package variant

import (
	"fmt"
	"sort"

	"cardroom/pkg/deck"
	"cardroom/pkg/poker/eval"
	"cardroom/pkg/poker/player"
	"cardroom/pkg/poker/potmanager"
)

// ShowdownHand is one player's revealed hand at showdown
type ShowdownHand struct {
	PlayerID int64     `json:"playerId"`
	Cards    deck.Hand `json:"cards"`
	// HandRank names the high hand, e.g. "Full House"
	HandRank string    `json:"handRank"`
	Best     deck.Hand `json:"best"`
	// LowQualified is set when the hand made a qualifying low in a
	// hi/lo game
	LowQualified bool `json:"lowQualified,omitempty"`
}

// Results is the final outcome of a hand
type Results struct {
	Payouts map[int64]int  `json:"payouts"`
	Hands   []ShowdownHand `json:"hands,omitempty"`
	// CarryOver is the pot-match amount owed to the next hand's pot in a
	// drop-or-stay game
	CarryOver int `json:"carryOver,omitempty"`
}

// showdown compares the active hands and awards the pots. Each seat's cards
// come from the variant's perspective (hole plus community, or the seat's
// own seven cards).
func (h *Hand) showdown(handOf func(s *seat) deck.Hand, opts eval.Options) error {
	active := h.activeSeats()
	if len(active) == 0 {
		panic("showdown with no active players")
	}

	tiers := potmanager.NewWinTiers()
	hands := make([]ShowdownHand, 0, len(active))
	for _, s := range active {
		cards := handOf(s)
		res := eval.Evaluate(cards, h.wildCards(cards), opts)
		tiers.AddPlayer(s.player, res.Strength)

		hands = append(hands, ShowdownHand{
			PlayerID: s.player.ID(),
			Cards:    cards,
			HandRank: res.Rank.String(),
			Best:     res.Best,
		})
		h.log.Sendf(s.player.ID(), "{} shows a %s", res.Rank)
	}

	payouts, err := h.pm.AwardPots(tiers.Resolver())
	if err != nil {
		panic(fmt.Sprintf("could not award pots: %v", err))
	}

	h.results = &Results{
		Payouts: payouts,
		Hands:   hands,
	}

	return nil
}

// showdownHiLo splits each pot between the best high hand and the best
// qualifying low hand among its eligible players
func (h *Hand) showdownHiLo(handOf func(s *seat) deck.Hand, opts eval.HiLoOptions) error {
	active := h.activeSeats()
	if len(active) == 0 {
		panic("showdown with no active players")
	}

	results := make(map[int64]eval.HiLoResult, len(active))
	hands := make([]ShowdownHand, 0, len(active))
	for _, s := range active {
		cards := handOf(s)
		res := eval.EvaluateHiLo(cards, h.wildCards(cards), opts)
		results[s.player.ID()] = res

		hands = append(hands, ShowdownHand{
			PlayerID:     s.player.ID(),
			Cards:        cards,
			HandRank:     res.High.Rank.String(),
			Best:         res.High.Best,
			LowQualified: res.Low.Qualifies,
		})

		if res.Low.Qualifies {
			h.log.Sendf(s.player.ID(), "{} shows a %s with a low", res.High.Rank)
		} else {
			h.log.Sendf(s.player.ID(), "{} shows a %s", res.High.Rank)
		}
	}

	payouts, err := h.pm.AwardPots(hiLoResolver(results))
	if err != nil {
		panic(fmt.Sprintf("could not award pots: %v", err))
	}

	h.results = &Results{
		Payouts: payouts,
		Hands:   hands,
	}

	return nil
}

// hiLoResolver returns a pot resolver awarding two groups: the best high
// hands and, when one qualifies, the best low hands. With no qualifying
// low, the high side takes the whole pot.
func hiLoResolver(results map[int64]eval.HiLoResult) potmanager.Resolver {
	return func(eligible []*player.Player) [][]*player.Player {
		var highGroup, lowGroup []*player.Player
		bestHigh, bestLow := -1, 0

		for _, p := range eligible {
			res := results[p.ID()]

			if res.High.Strength > bestHigh {
				bestHigh = res.High.Strength
				highGroup = []*player.Player{p}
			} else if res.High.Strength == bestHigh {
				highGroup = append(highGroup, p)
			}

			if res.Low.Qualifies && res.Low.Strength > bestLow {
				bestLow = res.Low.Strength
				lowGroup = []*player.Player{p}
			} else if res.Low.Qualifies && res.Low.Strength == bestLow {
				lowGroup = append(lowGroup, p)
			}
		}

		if len(lowGroup) == 0 {
			return [][]*player.Player{highGroup}
		}

		return [][]*player.Player{highGroup, lowGroup}
	}
}

// wildCards resolves the hand's wild rule against the cards
func (h *Hand) wildCards(cards deck.Hand) map[deck.Card]bool {
	if h.wilds == nil {
		return nil
	}

	return h.wilds.DetermineWildCards(cards)
}

// upCardStrength ranks a partial face-up hand for picking the first actor
// on a stud street. Groups compare by count then rank, most significant
// group first.
func upCardStrength(cards deck.Hand) int {
	counts := make(map[int]int)
	for _, card := range cards {
		counts[card.Rank]++
	}

	type group struct{ count, rank int }
	groups := make([]group, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, group{count: count, rank: rank})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	strength := 0
	for i := 0; i < 5; i++ {
		strength *= 256
		if i < len(groups) {
			strength += groups[i].count*16 + groups[i].rank
		}
	}

	return strength
}
