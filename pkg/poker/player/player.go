// Package player holds the per-hand mutable state for a seated player.
// Only the betting round and pot manager mutate a player during a hand.
package player

import "fmt"

// Player is a seated player's state for a single hand
type Player struct {
	id               int64
	balance          int
	currentBet       int
	totalContributed int
	folded           bool
	allIn            bool
}

// New returns a player with the given identity and chip stack
func New(id int64, balance int) *Player {
	if balance <= 0 {
		panic(fmt.Sprintf("player %d must have a positive balance", id))
	}

	return &Player{
		id:      id,
		balance: balance,
	}
}

// ID returns the player's identity
func (p *Player) ID() int64 {
	return p.id
}

// Balance returns the player's remaining chip stack
func (p *Player) Balance() int {
	return p.balance
}

// CurrentBet returns how much the player has committed on the current street
func (p *Player) CurrentBet() int {
	return p.currentBet
}

// TotalContributed returns how much the player has put into the pot this hand
func (p *Player) TotalContributed() int {
	return p.totalContributed
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// AllIn returns true if the player has committed their entire stack
func (p *Player) AllIn() bool {
	return p.allIn
}

// CanAct returns true if the player can still check, call, bet, raise or fold
func (p *Player) CanAct() bool {
	return !p.folded && !p.allIn
}

// Fold marks the player as folded. Chips already contributed stay in the pot.
func (p *Player) Fold() {
	p.folded = true
}

// Commit moves chips from the player's stack into their current bet.
// The amount is capped at the remaining balance; committing the full
// balance marks the player all-in. Returns the chips actually moved.
func (p *Player) Commit(amount int) int {
	if amount < 0 {
		panic("cannot commit a negative amount")
	}

	if amount >= p.balance {
		amount = p.balance
		p.allIn = true
	}

	p.balance -= amount
	p.currentBet += amount
	p.totalContributed += amount

	return amount
}

// AdjustBalance credits (or debits) the player's stack, e.g. a pot payout
func (p *Player) AdjustBalance(amount int) {
	p.balance += amount
}

// NewStreet clears the per-street bet. Called between betting rounds.
func (p *Player) NewStreet() {
	p.currentBet = 0
}

// Reset clears all per-hand state at the start of a new hand
func (p *Player) Reset() {
	p.currentBet = 0
	p.totalContributed = 0
	p.folded = false
	p.allIn = false
}
