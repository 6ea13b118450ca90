package variant

import (
	"cardroom/internal/config"
	"cardroom/pkg/deck"
	"cardroom/pkg/poker/betting"
	"cardroom/pkg/poker/eval"
)

// Five-card draw: antes, five down cards, a betting round on each side of
// the draw. The declare phase only runs in a drop-or-stay game.
var fiveCardDrawDescriptor = &descriptor{
	name:       "five-card draw",
	maxPlayers: 6,
	onHandStart: func(h *Hand) error {
		h.collectAntes()
		return h.dealToSeats(5, false)
	},
	nextPhase: func(h *Hand, current int) int {
		next := current + 1
		if next < len(h.desc.phases) && h.desc.phases[next].decision == decisionDropStay && !h.opts.Draw.DropOrStay {
			next++
		}

		return next
	},
	phases: []phase{
		{name: "first betting round", betting: drawRound},
		{name: "draw", decision: decisionDraw},
		{name: "second betting round", betting: drawRound},
		{name: "declare", decision: decisionDropStay},
		{name: "showdown", enter: drawShowdown},
	},
}

func drawRound(h *Hand) (*betting.Round, error) {
	return betting.NewRound(h.players, 0, betting.Options{
		MinBet:        h.opts.Ante,
		RaiseCap:      config.Instance().Betting.RaiseCap,
		ChipIncrement: h.opts.Ante,
	})
}

func drawShowdown(h *Hand) error {
	if !h.opts.Draw.DropOrStay {
		return h.showdown(func(s *seat) deck.Hand {
			return s.cards()
		}, eval.Options{})
	}

	return h.dropStayShowdown()
}

// dropStayShowdown settles a drop-or-stay hand. Stayers compare hands;
// stayers who lose match the pot, which carries over to the next hand. If
// everyone dropped, the whole pot carries over.
func (h *Hand) dropStayShowdown() error {
	pot := h.pm.TotalContributions()

	if len(h.activeSeats()) == 0 {
		h.log.Sendf(0, "Everyone dropped; the pot of %d carries over", pot)
		h.results = &Results{
			Payouts:   map[int64]int{},
			CarryOver: pot,
		}

		return nil
	}

	if err := h.showdown(func(s *seat) deck.Hand {
		return s.cards()
	}, eval.Options{}); err != nil {
		return err
	}

	// losers who stayed match the pot
	carryOver := 0
	for _, s := range h.seats {
		if !s.stayed {
			continue
		}

		if _, won := h.results.Payouts[s.player.ID()]; won {
			continue
		}

		penalty := pot
		if penalty > s.player.Balance() {
			penalty = s.player.Balance()
		}

		if penalty > 0 {
			s.player.AdjustBalance(-penalty)
			carryOver += penalty
			h.log.Sendf(s.player.ID(), "{} stayed and matches the pot (%d)", penalty)
		}
	}

	h.results.CarryOver = carryOver
	return nil
}
