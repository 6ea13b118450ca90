package variant

import "cardroom/pkg/poker/betting"

// decisionKind identifies a non-betting decision sub-phase
type decisionKind int

const (
	decisionNone decisionKind = iota
	// decisionDraw lets each player discard and draw replacements
	decisionDraw
	// decisionBuy offers each player a paid extra up-card
	decisionBuy
	// decisionDropStay makes each player declare for the showdown
	decisionDropStay
)

// phase is one step of a variant's hand lifecycle. enter runs once when the
// phase begins (dealing, forced bets); betting then opens a betting round
// and decision runs a decision sub-phase. A phase with neither is terminal
// work such as the showdown.
type phase struct {
	name     string
	enter    func(h *Hand) error
	betting  func(h *Hand) (*betting.Round, error)
	decision decisionKind
}

// descriptor is the per-variant phase table plus its hook points. The hand
// lifecycle is the same engine for every variant; only the table differs.
type descriptor struct {
	name       string
	maxPlayers int
	phases     []phase

	// initialPhase picks the starting phase; nil starts at the first
	initialPhase func(h *Hand) int
	// nextPhase picks the phase after the current one; nil advances in order
	nextPhase func(h *Hand, current int) int
	// onHandStart runs before the first phase (antes, initial deal)
	onHandStart func(h *Hand) error
	// onHandComplete runs after the results are final
	onHandComplete func(h *Hand)
}

func (d *descriptor) first(h *Hand) int {
	if d.initialPhase != nil {
		return d.initialPhase(h)
	}

	return 0
}

func (d *descriptor) next(h *Hand, current int) int {
	if d.nextPhase != nil {
		return d.nextPhase(h, current)
	}

	return current + 1
}

var descriptors = map[Code]*descriptor{
	Holdem:       holdemDescriptor,
	SevenStud:    sevenStudDescriptor,
	FiveCardDraw: fiveCardDrawDescriptor,
}
