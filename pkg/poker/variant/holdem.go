package variant

import (
	"cardroom/internal/config"
	"cardroom/pkg/deck"
	"cardroom/pkg/poker/betting"
	"cardroom/pkg/poker/eval"
	"cardroom/pkg/poker/gamelog"
)

// Texas hold'em: blinds, two hole cards, then four betting rounds around
// the flop, turn, and river.
var holdemDescriptor = &descriptor{
	name:       "texas hold'em",
	maxPlayers: 10,
	onHandStart: func(h *Hand) error {
		h.collectAntes()
		h.postBlinds()
		return h.dealToSeats(2, false)
	},
	phases: []phase{
		{name: "preflop", betting: preflopRound},
		{name: "flop", enter: dealStreet(3), betting: communityRound},
		{name: "turn", enter: dealStreet(1), betting: communityRound},
		{name: "river", enter: dealStreet(1), betting: communityRound},
		{name: "showdown", enter: holdemShowdown},
	},
}

// postBlinds commits the small and big blinds from the first two seats
// after the dealer
func (h *Hand) postBlinds() {
	opts := h.opts.Holdem

	small := h.players[0]
	moved := small.Commit(opts.SmallBlind)
	h.pm.AddContribution(small.ID(), moved)
	h.log.Sendf(small.ID(), "{} posts the small blind (%d)", moved)

	big := h.players[1]
	moved = big.Commit(opts.BigBlind)
	h.pm.AddContribution(big.ID(), moved)
	h.log.Sendf(big.ID(), "{} posts the big blind (%d)", moved)
}

// preflopRound opens betting against the big blind; the player after the
// big blind acts first and the big blind retains the option
func preflopRound(h *Hand) (*betting.Round, error) {
	return betting.NewRound(h.players, 2%len(h.players), betting.Options{
		MinBet:        h.opts.Holdem.BigBlind,
		OpeningBet:    h.opts.Holdem.BigBlind,
		RaiseCap:      config.Instance().Betting.RaiseCap,
		ChipIncrement: config.Instance().Betting.ChipIncrement,
	})
}

func communityRound(h *Hand) (*betting.Round, error) {
	return betting.NewRound(h.players, 0, betting.Options{
		MinBet:        h.opts.Holdem.BigBlind,
		RaiseCap:      config.Instance().Betting.RaiseCap,
		ChipIncrement: config.Instance().Betting.ChipIncrement,
	})
}

func dealStreet(count int) func(h *Hand) error {
	return func(h *Hand) error {
		if err := h.dealCommunity(count); err != nil {
			return err
		}

		h.log.Send(newCommunityMessage(h.community))
		return nil
	}
}

func newCommunityMessage(community deck.Hand) *gamelog.Message {
	return gamelog.NewWithCards(0, community, "The board shows %s", community)
}

func holdemShowdown(h *Hand) error {
	return h.showdown(func(s *seat) deck.Hand {
		return append(s.cards(), h.community...)
	}, eval.Options{})
}
