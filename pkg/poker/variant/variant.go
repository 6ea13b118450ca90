// Package variant orchestrates full poker hands. Each variant is a phase
// table over the same engine: deal, run betting rounds, split pots on
// all-ins, and award at the showdown.
package variant

import (
	"errors"
	"fmt"

	"cardroom/pkg/deck"
	"cardroom/pkg/poker/action"
	"cardroom/pkg/poker/betting"
	"cardroom/pkg/poker/gamelog"
	"cardroom/pkg/poker/player"
	"cardroom/pkg/poker/potmanager"
	"cardroom/pkg/poker/wild"

	"cardroom/internal/rng"

	"github.com/sirupsen/logrus"
)

// seat is a player's cards and per-hand declarations
type seat struct {
	player *player.Player
	down   deck.Hand
	up     deck.Hand
	stayed bool
	bought bool
}

// cards returns the seat's full hand
func (s *seat) cards() deck.Hand {
	cards := make(deck.Hand, 0, len(s.down)+len(s.up))
	cards = append(cards, s.down...)
	cards = append(cards, s.up...)

	return cards
}

// Hand is a single hand of poker. It is mutated serially by one owner; the
// calling layer must not process two actions concurrently.
type Hand struct {
	logger logrus.FieldLogger
	gen    rng.Generator
	opts   Options
	desc   *descriptor

	deck    *deck.Deck
	players []*player.Player
	seats   []*seat
	byID    map[int64]*seat

	pm        *potmanager.PotManager
	log       *gamelog.Log
	wilds     wild.RuleSet
	community deck.Hand
	discards  deck.Hand

	phaseIndex int
	started    bool
	betting    *betting.Round
	decision   *decisionRunner
	results    *Results
}

// Input is a player's move: a betting action, or a decision such as a
// discard, a buy, or a drop-or-stay declaration
type Input struct {
	PlayerID int64
	Action   action.Action
	Amount   int
	Cards    deck.Hand
}

// ActionResult reports where the hand stands after a processed action
type ActionResult struct {
	Phase        string
	HandComplete bool
	// NextActorID is 0 when no player decision is pending
	NextActorID int64
}

// New creates a hand. The players must be in positional order starting left
// of the dealer and keep their chip state across hands; each player is reset
// for the new hand.
func New(logger logrus.FieldLogger, gen rng.Generator, players []*player.Player, opts Options) (*Hand, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	desc := descriptors[opts.Variant]

	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if len(players) > desc.maxPlayers {
		return nil, fmt.Errorf("%s allows at most %d players", desc.name, desc.maxPlayers)
	}

	d := deck.New(gen)
	d.Shuffle()

	seats := make([]*seat, len(players))
	byID := make(map[int64]*seat, len(players))
	for i, p := range players {
		p.Reset()
		seats[i] = &seat{player: p}
		byID[p.ID()] = seats[i]
	}

	var wilds wild.RuleSet
	if opts.Stud != nil {
		// validated above
		wilds, _ = opts.Stud.wildRuleSet()
	}

	return &Hand{
		logger:  logger.WithField("variant", opts.Variant),
		gen:     gen,
		opts:    opts,
		desc:    desc,
		deck:    d,
		players: players,
		seats:   seats,
		byID:    byID,
		pm:      potmanager.New(players),
		log:     gamelog.NewLog(),
		wilds:   wilds,
	}, nil
}

// Name returns the variant's display name
func (h *Hand) Name() string {
	return h.desc.name
}

// Log returns the hand log
func (h *Hand) Log() *gamelog.Log {
	return h.log
}

// Phase returns the name of the current phase
func (h *Hand) Phase() string {
	if h.results != nil {
		return "complete"
	}

	if !h.started {
		return "pending"
	}

	return h.desc.phases[h.phaseIndex].name
}

// Community returns the shared cards dealt so far
func (h *Hand) Community() deck.Hand {
	return h.community.Clone()
}

// PlayerCards returns a player's face-down and face-up cards
func (h *Hand) PlayerCards(playerID int64) (down, up deck.Hand, err error) {
	s, ok := h.byID[playerID]
	if !ok {
		return nil, nil, fmt.Errorf("unknown player: %d", playerID)
	}

	return s.down.Clone(), s.up.Clone(), nil
}

// Results returns the final results once the hand is complete
func (h *Hand) Results() (*Results, bool) {
	if h.results == nil {
		return nil, false
	}

	return h.results, true
}

// CurrentActorID returns the player whose move is pending
func (h *Hand) CurrentActorID() (int64, bool) {
	if h.betting != nil {
		if p := h.betting.CurrentActor(); p != nil {
			return p.ID(), true
		}

		return 0, false
	}

	if h.decision != nil {
		return h.decision.current().player.ID(), true
	}

	return 0, false
}

// Start begins the hand: the on-hand-start hook runs, then phases advance
// until a player decision is pending or the hand completes
func (h *Hand) Start() error {
	if h.started {
		return errors.New("the hand has already started")
	}
	h.started = true

	h.log.Sendf(0, "New hand of %s started", h.desc.name)

	if h.desc.onHandStart != nil {
		if err := h.desc.onHandStart(h); err != nil {
			return err
		}
	}

	return h.enterPhase(h.desc.first(h))
}

// ProcessAction applies one player move. Rule violations come back as a
// typed error with the hand untouched; a default action on turn expiry goes
// through this same path.
func (h *Hand) ProcessAction(input Input) (*ActionResult, error) {
	if h.results != nil {
		return nil, ErrHandComplete
	}

	if !h.started {
		return nil, errors.New("the hand has not started")
	}

	switch {
	case h.betting != nil:
		if err := h.processBettingAction(input); err != nil {
			return nil, err
		}
	case h.decision != nil:
		if err := h.processDecision(input); err != nil {
			return nil, err
		}
	default:
		panic("no pending phase to act in")
	}

	result := &ActionResult{
		Phase:        h.Phase(),
		HandComplete: h.results != nil,
	}
	if id, ok := h.CurrentActorID(); ok {
		result.NextActorID = id
	}

	return result, nil
}

func (h *Hand) processBettingAction(input Input) error {
	res, err := h.betting.ProcessAction(input.PlayerID, input.Action, input.Amount)
	if err != nil {
		return err
	}

	if res.ChipsMoved > 0 {
		h.pm.AddContribution(input.PlayerID, res.ChipsMoved)
	}

	// a raise logs the raise-to amount, not the chips it cost
	amount := res.ChipsMoved
	if input.Action == action.Raise {
		amount = res.NewCurrentBet
	}
	h.log.Sendf(input.PlayerID, "{} %s", input.Action.LogMessage(amount))

	if res.RoundComplete {
		return h.finishBettingRound()
	}

	return nil
}

// finishBettingRound closes the street and advances the phase table
func (h *Hand) finishBettingRound() error {
	h.betting = nil
	for _, p := range h.players {
		p.NewStreet()
	}

	if h.playersInHand() == 1 {
		h.awardFoldWin()
		return nil
	}

	if h.anyAllIn() {
		h.pm.CalculateSidePots()
	}

	return h.enterPhase(h.desc.next(h, h.phaseIndex))
}

// enterPhase runs phases until one needs player input or the table ends
func (h *Hand) enterPhase(index int) error {
	for {
		if index >= len(h.desc.phases) {
			if h.results == nil {
				panic("phase table ended without a showdown")
			}

			return nil
		}

		h.phaseIndex = index
		ph := h.desc.phases[index]

		if ph.enter != nil {
			if err := ph.enter(h); err != nil {
				return err
			}
		}

		if h.results != nil {
			h.completeHand()
			return nil
		}

		if ph.betting != nil {
			round, err := ph.betting(h)
			if err != nil {
				return err
			}

			if !round.Complete() {
				h.betting = round
				return nil
			}
			// nobody can act (all-in); fall through to the next phase
		}

		if ph.decision != decisionNone {
			if runner := h.newDecisionRunner(ph.decision); runner != nil {
				h.decision = runner
				return nil
			}
		}

		index = h.desc.next(h, index)
	}
}

func (h *Hand) completeHand() {
	if h.desc.onHandComplete != nil {
		h.desc.onHandComplete(h)
	}

	for id, amount := range h.results.Payouts {
		h.log.Sendf(id, "{} won %d", amount)
	}

	h.logger.WithFields(logrus.Fields{
		"pot":     h.pm.TotalContributions(),
		"players": h.playersInHand(),
	}).Info("hand complete")
}

// awardFoldWin ends the hand when everyone else folded
func (h *Hand) awardFoldWin() {
	var winner *player.Player
	for _, p := range h.players {
		if !p.Folded() {
			winner = p
			break
		}
	}

	payouts, err := h.pm.AwardPots(func(eligible []*player.Player) [][]*player.Player {
		return [][]*player.Player{{winner}}
	})
	if err != nil {
		panic(fmt.Sprintf("could not award pots: %v", err))
	}

	h.results = &Results{Payouts: payouts}
	h.log.Sendf(winner.ID(), "{} wins; everyone else folded")
	h.completeHand()
}

// collectAntes commits each player's ante to the pot
func (h *Hand) collectAntes() {
	if h.opts.Ante == 0 {
		return
	}

	for _, p := range h.players {
		moved := p.Commit(h.opts.Ante)
		h.pm.AddContribution(p.ID(), moved)
	}

	h.log.Sendf(0, "Antes collected (%d per player)", h.opts.Ante)

	for _, p := range h.players {
		p.NewStreet()
	}
}

// dealToSeats deals count cards to every seat still in the hand, one card
// per seat at a time
func (h *Hand) dealToSeats(count int, faceUp bool) error {
	for i := 0; i < count; i++ {
		for _, s := range h.seats {
			if s.player.Folded() {
				continue
			}

			card, err := h.drawCard()
			if err != nil {
				return err
			}

			if faceUp {
				s.up.AddCard(card)
			} else {
				s.down.AddCard(card)
			}
		}
	}

	return nil
}

// dealCommunity deals count shared cards
func (h *Hand) dealCommunity(count int) error {
	for i := 0; i < count; i++ {
		card, err := h.drawCard()
		if err != nil {
			return err
		}

		h.community.AddCard(card)
	}

	return nil
}

// drawCard draws from the deck, reshuffling the discard pile if the deck
// ran out
func (h *Hand) drawCard() (deck.Card, error) {
	if !h.deck.CanDraw(1) && len(h.discards) > 0 {
		h.deck.ShuffleDiscards(h.discards)
		h.discards = deck.Hand{}
	}

	return h.deck.Draw()
}

func (h *Hand) playersInHand() int {
	count := 0
	for _, p := range h.players {
		if !p.Folded() {
			count++
		}
	}

	return count
}

func (h *Hand) anyAllIn() bool {
	for _, p := range h.players {
		if p.AllIn() {
			return true
		}
	}

	return false
}

// activeSeats returns the seats still in the hand, in positional order
func (h *Hand) activeSeats() []*seat {
	active := make([]*seat, 0, len(h.seats))
	for _, s := range h.seats {
		if !s.player.Folded() {
			active = append(active, s)
		}
	}

	return active
}
