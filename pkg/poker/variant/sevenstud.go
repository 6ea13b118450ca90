package variant

import (
	"cardroom/internal/config"
	"cardroom/pkg/deck"
	"cardroom/pkg/poker/betting"
	"cardroom/pkg/poker/eval"
)

// Seven-card stud: antes, two down and one up, then betting on each street.
// The bring-in opens third street; the best visible hand opens the rest.
// The buy phase is skipped unless the options price an extra card.
var sevenStudDescriptor = &descriptor{
	name:       "seven-card stud",
	maxPlayers: 7,
	onHandStart: func(h *Hand) error {
		h.collectAntes()

		if err := h.dealToSeats(2, false); err != nil {
			return err
		}

		return h.dealToSeats(1, true)
	},
	nextPhase: func(h *Hand, current int) int {
		next := current + 1
		if next < len(h.desc.phases) && h.desc.phases[next].decision == decisionBuy && h.opts.Stud.BuyCardPrice == 0 {
			next++
		}

		return next
	},
	phases: []phase{
		{name: "third street", betting: bringInRound},
		{name: "fourth street", enter: dealUpCard, betting: studRound},
		{name: "fifth street", enter: dealUpCard, betting: studRound},
		{name: "buy", decision: decisionBuy},
		{name: "sixth street", enter: dealUpCard, betting: studRound},
		{name: "seventh street", enter: dealDownCard, betting: studRound},
		{name: "showdown", enter: studShowdown},
	},
}

func dealUpCard(h *Hand) error {
	return h.dealToSeats(1, true)
}

func dealDownCard(h *Hand) error {
	return h.dealToSeats(1, false)
}

// bringInRound posts the forced bring-in from the lowest up-card and opens
// betting with the next player
func bringInRound(h *Hand) (*betting.Round, error) {
	opts := h.opts.Stud
	index := h.bringInSeat()

	poster := h.players[index]
	moved := poster.Commit(opts.BringIn)
	h.pm.AddContribution(poster.ID(), moved)
	h.log.Sendf(poster.ID(), "{} posts the bring-in (%d)", moved)

	return betting.NewRound(h.players, (index+1)%len(h.players), betting.Options{
		MinBet:       opts.BetSize,
		OpeningBet:   opts.BringIn,
		OpeningRaise: opts.BetSize - opts.BringIn,
		RaiseCap:     config.Instance().Betting.RaiseCap,
		// completing the bring-in goes to the bet size, so raise-to
		// amounts stay on bet-size multiples
		ChipIncrement: opts.BetSize,
	})
}

// studRound opens betting with the best visible hand
func studRound(h *Hand) (*betting.Round, error) {
	return betting.NewRound(h.players, h.bestVisibleSeat(), betting.Options{
		MinBet:        h.opts.Stud.BetSize,
		RaiseCap:      config.Instance().Betting.RaiseCap,
		ChipIncrement: h.opts.Stud.BetSize,
	})
}

// bringInSeat returns the seat showing the lowest up-card; suit ties break
// in bridge order
func (h *Hand) bringInSeat() int {
	lowest := -1
	var lowCard deck.Card

	for i, s := range h.seats {
		if s.player.Folded() {
			continue
		}

		card, ok := s.up.FirstCard()
		if !ok {
			continue
		}

		if lowest < 0 || card.Rank < lowCard.Rank ||
			(card.Rank == lowCard.Rank && card.Suit.BridgeOrder() < lowCard.Suit.BridgeOrder()) {
			lowest = i
			lowCard = card
		}
	}

	if lowest < 0 {
		panic("no seat shows an up-card")
	}

	return lowest
}

// bestVisibleSeat returns the seat showing the strongest up-cards
func (h *Hand) bestVisibleSeat() int {
	best := -1
	bestStrength := -1

	for i, s := range h.seats {
		if s.player.Folded() {
			continue
		}

		if strength := upCardStrength(s.up); strength > bestStrength {
			best = i
			bestStrength = strength
		}
	}

	if best < 0 {
		panic("no seat shows an up-card")
	}

	return best
}

func studShowdown(h *Hand) error {
	handOf := func(s *seat) deck.Hand {
		return s.cards()
	}

	if h.opts.Stud.HiLo {
		return h.showdownHiLo(handOf, eval.HiLoOptions{
			Low: eval.LowOptions{Qualifier: 8},
		})
	}

	return h.showdown(handOf, eval.Options{})
}
