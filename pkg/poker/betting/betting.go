// Package betting implements the per-street betting round state machine.
// A Round is created at the start of each street and replaced at the next;
// it mutates player stacks and current bets but knows nothing about pots.
package betting

import (
	"errors"
	"fmt"

	"cardroom/pkg/poker/action"
	"cardroom/pkg/poker/player"
)

// Options configures a betting round
type Options struct {
	// MinBet is the minimum opening bet
	MinBet int
	// ChipIncrement requires bet and raise amounts to be multiples of it;
	// 0 allows any amount. All-ins are exempt.
	ChipIncrement int
	// RaiseCap limits the number of bets plus raises per street; 0 is uncapped
	RaiseCap int
	// OpeningBet is a pre-posted bet the table must match (big blind, bring-in)
	OpeningBet int
	// OpeningRaise is the initial raise increment. Defaults to OpeningBet,
	// or MinBet when there is no opening bet.
	OpeningRaise int
}

// Round is a single street's betting round
type Round struct {
	players        []*player.Player
	opts           Options
	currentBet     int
	lastRaise      int
	raises         int
	lastAggressor  int64
	acted          map[int64]bool
	actionAt       int
	complete       bool
}

// Result describes the effect of a processed action
type Result struct {
	ChipsMoved    int
	NewCurrentBet int
	RoundComplete bool
	// NextActorID is 0 when the round is complete
	NextActorID int64
}

// NewRound starts a betting round. The players are in turn order and
// firstToAct indexes the street's designated first actor; folded and all-in
// players are skipped. A round where nobody can act completes immediately.
func NewRound(players []*player.Player, firstToAct int, opts Options) (*Round, error) {
	if len(players) < 2 {
		return nil, errors.New("a betting round requires at least two players")
	}

	if firstToAct < 0 || firstToAct >= len(players) {
		return nil, fmt.Errorf("first actor index %d out of range", firstToAct)
	}

	if opts.MinBet <= 0 {
		return nil, errors.New("minimum bet must be greater than zero")
	}

	lastRaise := opts.OpeningRaise
	if lastRaise == 0 {
		if opts.OpeningBet > 0 {
			lastRaise = opts.OpeningBet
		} else {
			lastRaise = opts.MinBet
		}
	}

	r := &Round{
		players:    players,
		opts:       opts,
		currentBet: opts.OpeningBet,
		lastRaise:  lastRaise,
		acted:      make(map[int64]bool),
		actionAt:   firstToAct,
	}

	if !r.playerNeedsAction(players[firstToAct]) {
		r.advance(firstToAct)
	}

	return r, nil
}

// CurrentBet returns the bet to match on this street
func (r *Round) CurrentBet() int {
	return r.currentBet
}

// LastRaise returns the current raise increment
func (r *Round) LastRaise() int {
	return r.lastRaise
}

// Raises returns how many bets and raises have been made this street
func (r *Round) Raises() int {
	return r.raises
}

// LastAggressorID returns the last player to bet or fully raise, or 0
func (r *Round) LastAggressorID() int64 {
	return r.lastAggressor
}

// Complete returns true once the round is over. A complete round is terminal.
func (r *Round) Complete() bool {
	return r.complete
}

// CurrentActor returns the player whose turn it is, or nil if the round is over
func (r *Round) CurrentActor() *player.Player {
	if r.complete {
		return nil
	}

	return r.players[r.actionAt]
}

// PlayersInHand returns the number of players who have not folded.
// All-in players still count as in the hand.
func (r *Round) PlayersInHand() int {
	count := 0
	for _, p := range r.players {
		if !p.Folded() {
			count++
		}
	}

	return count
}

// ProcessAction validates and applies a player action. Rule violations are
// returned as a *RuleError and leave the round untouched.
func (r *Round) ProcessAction(actorID int64, act action.Action, amount int) (*Result, error) {
	if r.complete {
		return nil, ErrRoundOver
	}

	p := r.players[r.actionAt]
	if p.ID() != actorID {
		return nil, newRuleError(OutOfTurn, "it is not your turn")
	}

	var moved int
	var err error

	switch act {
	case action.Check:
		err = r.check(p)
	case action.Call:
		moved, err = r.call(p)
	case action.Bet:
		moved, err = r.bet(p, amount)
	case action.Raise:
		moved, err = r.raise(p, amount)
	case action.AllIn:
		moved, err = r.allIn(p)
	case action.Fold:
		p.Fold()
	default:
		err = newRuleError(UnsupportedAction, "cannot %s during a betting round", act)
	}

	if err != nil {
		return nil, err
	}

	r.acted[p.ID()] = true
	r.advance(r.actionAt)

	res := &Result{
		ChipsMoved:    moved,
		NewCurrentBet: r.currentBet,
		RoundComplete: r.complete,
	}
	if !r.complete {
		res.NextActorID = r.players[r.actionAt].ID()
	}

	return res, nil
}

func (r *Round) check(p *player.Player) error {
	if p.CurrentBet() != r.currentBet {
		return newRuleError(IllegalCheck, "you cannot check with ${%d} to call", r.currentBet-p.CurrentBet())
	}

	return nil
}

func (r *Round) call(p *player.Player) (int, error) {
	if r.currentBet == 0 || p.CurrentBet() >= r.currentBet {
		return 0, newRuleError(NothingToCall, "there is nothing to call")
	}

	// Commit caps at the balance, making a short call an all-in
	return p.Commit(r.currentBet - p.CurrentBet()), nil
}

func (r *Round) bet(p *player.Player, amount int) (int, error) {
	if r.currentBet > 0 {
		return 0, newRuleError(BetNotAllowed, "there is already a bet of ${%d}; raise instead", r.currentBet)
	}

	if amount <= 0 {
		return 0, newRuleError(BetTooSmall, "bet must be greater than zero")
	}

	chips := amount - p.CurrentBet()

	// an undersized bet is only allowed as an all-in
	if amount < r.opts.MinBet && chips != p.Balance() {
		return 0, newRuleError(BetTooSmall, "bet must be at least ${%d}", r.opts.MinBet)
	}

	if r.opts.ChipIncrement > 0 && amount%r.opts.ChipIncrement != 0 && chips != p.Balance() {
		return 0, newRuleError(WrongIncrement, "bet must be in increments of ${%d}", r.opts.ChipIncrement)
	}

	if chips > p.Balance() {
		return 0, newRuleError(InsufficientFunds, "bet of ${%d} exceeds your stack", amount)
	}

	if r.capReached() {
		return 0, newRuleError(RaiseCapReached, "the betting cap has been reached")
	}

	moved := p.Commit(chips)
	r.currentBet = amount

	// a raise over a short all-in bet must still be a full raise
	r.lastRaise = amount
	if r.lastRaise < r.opts.MinBet {
		r.lastRaise = r.opts.MinBet
	}
	r.raises++
	r.setAggressor(p)

	return moved, nil
}

func (r *Round) raise(p *player.Player, amount int) (int, error) {
	if r.currentBet == 0 {
		return 0, newRuleError(BetNotAllowed, "there is no bet to raise; bet instead")
	}

	if amount <= r.currentBet {
		return 0, newRuleError(RaiseTooSmall, "raise must exceed the current bet of ${%d}", r.currentBet)
	}

	chips := amount - p.CurrentBet()
	fullRaise := amount >= r.currentBet+r.lastRaise

	// an under-sized raise is only allowed as an all-in
	if !fullRaise && chips != p.Balance() {
		return 0, newRuleError(RaiseTooSmall, "raise must be at least ${%d}", r.currentBet+r.lastRaise)
	}

	if r.opts.ChipIncrement > 0 && amount%r.opts.ChipIncrement != 0 && chips != p.Balance() {
		return 0, newRuleError(WrongIncrement, "raise must be in increments of ${%d}", r.opts.ChipIncrement)
	}

	if chips > p.Balance() {
		return 0, newRuleError(InsufficientFunds, "raise to ${%d} exceeds your stack", amount)
	}

	if fullRaise && r.capReached() {
		return 0, newRuleError(RaiseCapReached, "the raise cap has been reached")
	}

	moved := p.Commit(chips)
	if fullRaise {
		r.lastRaise = amount - r.currentBet
		r.raises++
		r.setAggressor(p)
	}
	// an under-raise all-in does not reopen action for players who already
	// matched the previous bet
	r.currentBet = amount

	return moved, nil
}

func (r *Round) allIn(p *player.Player) (int, error) {
	amount := p.CurrentBet() + p.Balance()

	if r.currentBet == 0 {
		moved := p.Commit(p.Balance())
		r.currentBet = amount
		if amount > r.lastRaise {
			r.lastRaise = amount
		}
		r.raises++
		r.setAggressor(p)
		return moved, nil
	}

	if amount > r.currentBet {
		return r.raise(p, amount)
	}

	// all-in for less than the current bet is a short call
	return p.Commit(p.Balance()), nil
}

func (r *Round) capReached() bool {
	return r.opts.RaiseCap > 0 && r.raises >= r.opts.RaiseCap
}

// setAggressor records a bet or full raise and reopens action for everyone else
func (r *Round) setAggressor(p *player.Player) {
	r.lastAggressor = p.ID()
	r.acted = map[int64]bool{p.ID(): true}
}

// playerNeedsAction returns true if the player still owes a decision
func (r *Round) playerNeedsAction(p *player.Player) bool {
	return p.CanAct() && !r.acted[p.ID()]
}

// advance moves to the next player owing a decision, or completes the round.
// The round is complete when one player remains, when every player who can
// act has acted since the last bet or full raise, or when nobody can act.
func (r *Round) advance(from int) {
	if r.PlayersInHand() == 1 {
		r.complete = true
		return
	}

	n := len(r.players)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if r.playerNeedsAction(r.players[idx]) {
			r.actionAt = idx
			return
		}
	}

	r.complete = true
}
