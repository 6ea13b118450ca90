// Package potmanager tracks contributions, splits pots on uneven all-ins,
// and awards pots to eligible winners.
package potmanager

import (
	"errors"
	"fmt"
	"sort"

	"cardroom/pkg/poker/player"
)

// Contribution is one player's share of a pot tier
type Contribution struct {
	PlayerID int64 `json:"playerId"`
	Amount   int   `json:"amount"`
	// Eligible is false for folded contributors; their chips still count
	// toward the pot amount
	Eligible bool `json:"eligible"`
}

// Pot is a single pot tier. The main pot is tier 0; side pots are tier >= 1.
type Pot struct {
	Tier          int            `json:"tier"`
	Amount        int            `json:"amount"`
	Contributions []Contribution `json:"contributions"`
	Awarded       bool           `json:"awarded"`
	Payouts       map[int64]int  `json:"payouts,omitempty"`
}

// EligiblePlayerIDs returns the IDs of players who may win the pot
func (p *Pot) EligiblePlayerIDs() []int64 {
	ids := make([]int64, 0, len(p.Contributions))
	for _, c := range p.Contributions {
		if c.Eligible {
			ids = append(ids, c.PlayerID)
		}
	}

	return ids
}

// Resolver picks the winners from a pot's eligible players. It returns one
// or more winner groups; each group receives an equal share of the pot
// (i.e., a hi/lo split returns two groups), and ties within a group split
// that group's share evenly.
type Resolver func(eligible []*player.Player) [][]*player.Player

// PotManager accumulates contributions for a hand and splits them into pots
type PotManager struct {
	// players in positional order, starting left of the dealer
	players       []*player.Player
	index         map[int64]*player.Player
	contributions map[int64]int
	pots          []*Pot
	dirty         bool
	awarded       bool
}

// New instantiates a PotManager. The players must be provided in positional
// order starting left of the dealer; odd chips are paid in that order.
func New(players []*player.Player) *PotManager {
	index := make(map[int64]*player.Player, len(players))
	for _, p := range players {
		index[p.ID()] = p
	}

	return &PotManager{
		players:       players,
		index:         index,
		contributions: make(map[int64]int),
	}
}

// AddContribution records chips a player has put into the pot
func (pm *PotManager) AddContribution(playerID int64, amount int) {
	if amount < 0 {
		panic("contribution cannot be negative")
	}

	if _, ok := pm.index[playerID]; !ok {
		panic(fmt.Sprintf("unknown player: %d", playerID))
	}

	pm.contributions[playerID] += amount
	pm.dirty = true
}

// TotalContributions returns the total chips contributed this hand
func (pm *PotManager) TotalContributions() int {
	total := 0
	for _, amount := range pm.contributions {
		total += amount
	}

	return total
}

// Pots returns the current pots, recalculating if needed
func (pm *PotManager) Pots() []*Pot {
	if pm.dirty || pm.pots == nil {
		pm.CalculateSidePots()
	}

	return pm.pots
}

// CalculateSidePots rebuilds the pots from the contribution totals.
// It is recomputed wholesale every time a new all-in level appears; prior
// pots are never patched incrementally. The sum of the pot amounts always
// equals the sum of the contributions.
func (pm *PotManager) CalculateSidePots() []*Pot {
	caps := pm.tierCaps()

	pots := make([]*Pot, 0, len(caps))
	prev := 0
	for _, tierCap := range caps {
		pot := &Pot{}

		for _, p := range pm.players {
			contributed := pm.contributions[p.ID()]
			if contributed <= prev {
				continue
			}

			amount := contributed
			if amount > tierCap {
				amount = tierCap
			}
			amount -= prev

			pot.Amount += amount
			pot.Contributions = append(pot.Contributions, Contribution{
				PlayerID: p.ID(),
				Amount:   amount,
				Eligible: !p.Folded() && contributed >= tierCap,
			})
		}

		if pot.Amount > 0 {
			pot.Tier = len(pots)
			pots = append(pots, pot)
		}

		prev = tierCap
	}

	pm.pots = pots
	pm.dirty = false

	if total := pm.TotalContributions(); potTotal(pots) != total {
		panic(fmt.Sprintf("pot total %d does not match contributions %d", potTotal(pots), total))
	}

	return pots
}

// tierCaps returns the ascending distinct all-in contribution levels, plus a
// final cap covering contributions above the highest all-in level. The
// highest contribution among live players who are not all-in is also a
// boundary: when an under-raise all-in closes a street above the level the
// others matched, their chips form a pot they can still win.
func (pm *PotManager) tierCaps() []int {
	levels := make(map[int]bool)
	maxContribution := 0
	maxMatched := 0

	for _, p := range pm.players {
		contributed := pm.contributions[p.ID()]
		if contributed > maxContribution {
			maxContribution = contributed
		}

		if p.AllIn() && contributed > 0 {
			levels[contributed] = true
		}

		if !p.AllIn() && !p.Folded() && contributed > maxMatched {
			maxMatched = contributed
		}
	}

	if maxMatched > 0 {
		levels[maxMatched] = true
	}

	caps := make([]int, 0, len(levels)+1)
	for level := range levels {
		caps = append(caps, level)
	}
	sort.Ints(caps)

	if len(caps) == 0 || maxContribution > caps[len(caps)-1] {
		caps = append(caps, maxContribution)
	}

	return caps
}

// AwardPots pays out each pot in ascending tier order. The resolver receives
// the pot's eligible players; if a pot has no eligible players, every
// non-folded player is treated as eligible. Integer remainders are paid one
// chip at a time in positional order after the dealer. Winner balances are
// credited and the combined payouts are returned.
//
// The pots are recalculated first so folds since the last calculation are
// reflected; pot slices returned earlier are superseded. Read Pots() after
// awarding for the Awarded flags and per-pot payouts.
func (pm *PotManager) AwardPots(resolve Resolver) (map[int64]int, error) {
	if pm.awarded {
		return nil, errors.New("pot has already been awarded")
	}

	// recompute so folds since the last all-in are reflected
	pots := pm.CalculateSidePots()
	payouts := make(map[int64]int)
	var lastPot *Pot

	for _, pot := range pots {
		eligible := pm.eligiblePlayers(pot)
		groups := resolve(eligible)
		if winnerCount(groups) == 0 {
			return nil, fmt.Errorf("no winners resolved for pot tier %d", pot.Tier)
		}

		pot.Payouts = make(map[int64]int)
		pm.payGroups(pot, groups)

		for id, amount := range pot.Payouts {
			payouts[id] += amount
		}

		pot.Awarded = true
		lastPot = pot
	}

	pm.awarded = true

	// reconcile rounding drift into the last pot
	if diff := pm.TotalContributions() - totalPayout(payouts); diff != 0 && lastPot != nil {
		id := pm.firstWinner(lastPot)
		lastPot.Amount += diff
		lastPot.Payouts[id] += diff
		payouts[id] += diff
		pm.index[id].AdjustBalance(diff)
	}

	return payouts, nil
}

// eligiblePlayers resolves a pot's eligible set, falling back to every
// non-folded player if the contribution records are inconsistent
func (pm *PotManager) eligiblePlayers(pot *Pot) []*player.Player {
	eligible := make([]*player.Player, 0, len(pot.Contributions))
	for _, c := range pot.Contributions {
		if c.Eligible {
			eligible = append(eligible, pm.index[c.PlayerID])
		}
	}

	if len(eligible) > 0 {
		return eligible
	}

	for _, p := range pm.players {
		if !p.Folded() {
			eligible = append(eligible, p)
		}
	}

	return eligible
}

// payGroups splits a pot among winner groups. Each group receives an equal
// share with any remainder to the first group; within a group, winners split
// evenly with odd chips paid in positional order.
func (pm *PotManager) payGroups(pot *Pot, groups [][]*player.Player) {
	groups = nonEmptyGroups(groups)

	groupShare := pot.Amount / len(groups)
	groupRemainder := pot.Amount % len(groups)

	for gi, group := range groups {
		amount := groupShare
		if gi == 0 {
			amount += groupRemainder
		}

		winners := pm.inPositionalOrder(group)
		share := amount / len(winners)
		oddChips := amount % len(winners)

		for wi, w := range winners {
			payout := share
			if wi < oddChips {
				payout++
			}

			if payout == 0 {
				continue
			}

			w.AdjustBalance(payout)
			pot.Payouts[w.ID()] += payout
		}
	}
}

// inPositionalOrder sorts winners by their seat order after the dealer
func (pm *PotManager) inPositionalOrder(group []*player.Player) []*player.Player {
	position := make(map[int64]int, len(pm.players))
	for i, p := range pm.players {
		position[p.ID()] = i
	}

	sorted := make([]*player.Player, len(group))
	copy(sorted, group)
	sort.Slice(sorted, func(i, j int) bool {
		return position[sorted[i].ID()] < position[sorted[j].ID()]
	})

	return sorted
}

func (pm *PotManager) firstWinner(pot *Pot) int64 {
	for _, p := range pm.players {
		if _, ok := pot.Payouts[p.ID()]; ok {
			return p.ID()
		}
	}

	panic("awarded pot has no payouts")
}

func nonEmptyGroups(groups [][]*player.Player) [][]*player.Player {
	out := make([][]*player.Player, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}

	return out
}

func winnerCount(groups [][]*player.Player) int {
	count := 0
	for _, g := range groups {
		count += len(g)
	}

	return count
}

func potTotal(pots []*Pot) int {
	total := 0
	for _, pot := range pots {
		total += pot.Amount
	}

	return total
}

func totalPayout(payouts map[int64]int) int {
	total := 0
	for _, amount := range payouts {
		total += amount
	}

	return total
}
