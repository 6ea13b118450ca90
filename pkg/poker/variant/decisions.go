package variant

import (
	"fmt"
	"strings"

	"cardroom/pkg/poker/action"
)

// decisionRunner walks the active seats through a decision sub-phase in
// positional order
type decisionRunner struct {
	kind  decisionKind
	order []*seat
	index int
}

// newDecisionRunner returns a runner over the active seats, or nil if
// nobody is left to decide
func (h *Hand) newDecisionRunner(kind decisionKind) *decisionRunner {
	order := h.activeSeats()
	if len(order) == 0 {
		return nil
	}

	return &decisionRunner{
		kind:  kind,
		order: order,
	}
}

func (r *decisionRunner) current() *seat {
	return r.order[r.index]
}

// advance moves to the next seat; it returns true when everyone has decided
func (r *decisionRunner) advance() bool {
	r.index++
	return r.index >= len(r.order)
}

// processDecision applies a decision-phase move for the current seat
func (h *Hand) processDecision(input Input) error {
	s := h.decision.current()
	if s.player.ID() != input.PlayerID {
		return newRuleError(OutOfTurn, "it is not your turn")
	}

	var err error
	switch h.decision.kind {
	case decisionDraw:
		err = h.processDraw(s, input)
	case decisionBuy:
		err = h.processBuy(s, input)
	case decisionDropStay:
		err = h.processDropStay(s, input)
	default:
		panic(fmt.Sprintf("unknown decision kind: %d", h.decision.kind))
	}

	if err != nil {
		return err
	}

	if h.decision.advance() {
		h.decision = nil
		return h.enterPhase(h.desc.next(h, h.phaseIndex))
	}

	return nil
}

// processDraw discards the named cards and draws replacements
func (h *Hand) processDraw(s *seat, input Input) error {
	if input.Action != action.Discard {
		return newRuleError(UnsupportedDecision, "you can only discard during the draw")
	}

	if !h.opts.Draw.canDiscard(len(input.Cards)) {
		return newRuleError(TooManyDiscards, "you may only discard %s cards", discardCounts(h.opts.Draw.Discards))
	}

	for _, card := range input.Cards {
		if !s.down.HasCard(card) {
			return newRuleError(UnknownCard, "you do not have the %s", card)
		}
	}

	for _, card := range input.Cards {
		s.down.Discard(card, 1)
		h.discards.AddCard(card)
	}

	for range input.Cards {
		card, err := h.drawCard()
		if err != nil {
			return err
		}

		s.down.AddCard(card)
	}

	if len(input.Cards) == 0 {
		h.log.Sendf(s.player.ID(), "{} stands pat")
	} else {
		h.log.Sendf(s.player.ID(), "{} draws %d", len(input.Cards))
	}

	return nil
}

// processBuy handles the paid extra-card offer. A check passes.
func (h *Hand) processBuy(s *seat, input Input) error {
	switch input.Action {
	case action.Check:
		h.log.Sendf(s.player.ID(), "{} passes on the extra card")
		return nil
	case action.Buy:
	default:
		return newRuleError(UnsupportedDecision, "you can only buy a card or check")
	}

	price := h.opts.Stud.BuyCardPrice
	if s.player.Balance() < price {
		return newRuleError(InsufficientFunds, "you cannot afford the extra card")
	}

	if !h.deck.CanDraw(1) {
		return newRuleError(UnsupportedDecision, "no cards left to buy")
	}

	card, err := h.drawCard()
	if err != nil {
		return err
	}

	moved := s.player.Commit(price)
	s.player.NewStreet()
	h.pm.AddContribution(s.player.ID(), moved)

	s.up.AddCard(card)
	s.bought = true
	h.log.Sendf(s.player.ID(), "{} buys an extra card for %d", price)

	return nil
}

// processDropStay records a declare decision; dropping folds the player
func (h *Hand) processDropStay(s *seat, input Input) error {
	switch input.Action {
	case action.Stay:
		s.stayed = true
		h.log.Sendf(s.player.ID(), "{} stays in")
	case action.Drop:
		s.player.Fold()
		h.log.Sendf(s.player.ID(), "{} drops")
	default:
		return newRuleError(UnsupportedDecision, "you must stay or drop")
	}

	return nil
}

func discardCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%d", c)
	}

	return strings.Join(parts, ", ")
}
