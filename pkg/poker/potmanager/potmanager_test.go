package potmanager

import (
	"testing"

	"cardroom/pkg/poker/player"

	"github.com/stretchr/testify/assert"
)

func contribute(pm *PotManager, p *player.Player, amount int) {
	p.Commit(amount)
	pm.AddContribution(p.ID(), amount)
}

func singleWinner(winner *player.Player) Resolver {
	return func(eligible []*player.Player) [][]*player.Player {
		for _, p := range eligible {
			if p.ID() == winner.ID() {
				return [][]*player.Player{{p}}
			}
		}

		return [][]*player.Player{{eligible[0]}}
	}
}

func TestPotManager_singlePot(t *testing.T) {
	a := assert.New(t)

	p1 := player.New(1, 100)
	p2 := player.New(2, 100)
	p3 := player.New(3, 100)
	pm := New([]*player.Player{p1, p2, p3})

	contribute(pm, p1, 20)
	contribute(pm, p2, 20)
	contribute(pm, p3, 20)
	p3.Fold()

	pots := pm.CalculateSidePots()
	a.Equal(1, len(pots))
	a.Equal(60, pots[0].Amount)
	a.Equal(60, pm.TotalContributions())

	// the folded contributor's chips count, but they cannot win
	a.Equal([]int64{1, 2}, pots[0].EligiblePlayerIDs())

	payouts, err := pm.AwardPots(singleWinner(p2))
	a.NoError(err)
	a.Equal(map[int64]int{2: 60}, payouts)
	a.Equal(140, p2.Balance())

	// awarding recalculates; the awarded pots come from Pots()
	pots = pm.Pots()
	a.True(pots[0].Awarded)
	a.Equal(map[int64]int{2: 60}, pots[0].Payouts)

	// a pot cannot be awarded twice
	_, err = pm.AwardPots(singleWinner(p2))
	a.EqualError(err, "pot has already been awarded")
}

func TestPotManager_unevenAllIns(t *testing.T) {
	a := assert.New(t)

	// stacks 100/50/30, everyone all-in
	p1 := player.New(1, 100)
	p2 := player.New(2, 50)
	p3 := player.New(3, 30)
	pm := New([]*player.Player{p1, p2, p3})

	contribute(pm, p1, 100)
	contribute(pm, p2, 50)
	contribute(pm, p3, 30)

	pots := pm.CalculateSidePots()
	a.Equal(3, len(pots))

	a.Equal(90, pots[0].Amount)
	a.Equal([]int64{1, 2, 3}, pots[0].EligiblePlayerIDs())

	a.Equal(40, pots[1].Amount)
	a.Equal([]int64{1, 2}, pots[1].EligiblePlayerIDs())

	a.Equal(50, pots[2].Amount)
	a.Equal([]int64{1}, pots[2].EligiblePlayerIDs())

	a.Equal(180, pm.TotalContributions())

	// the short stack wins the showdown: main pot only, side pots cascade
	tiers := NewWinTiers()
	tiers.AddPlayer(p3, 300)
	tiers.AddPlayer(p2, 200)
	tiers.AddPlayer(p1, 100)

	payouts, err := pm.AwardPots(tiers.Resolver())
	a.NoError(err)
	a.Equal(map[int64]int{3: 90, 2: 40, 1: 50}, payouts)
	a.Equal(90, p3.Balance())
	a.Equal(40, p2.Balance())
	a.Equal(50, p1.Balance())
}

func TestPotManager_underRaiseAllInKeepsCallersEligible(t *testing.T) {
	a := assert.New(t)

	// p1 and p2 matched a 50 bet; p3's short all-in to 55 closed the
	// street without them owing the extra five
	p1 := player.New(1, 100)
	p2 := player.New(2, 100)
	p3 := player.New(3, 55)
	pm := New([]*player.Player{p1, p2, p3})

	contribute(pm, p1, 50)
	contribute(pm, p2, 50)
	contribute(pm, p3, 55) // all-in

	pots := pm.CalculateSidePots()
	a.Equal(2, len(pots))

	// the matched chips stay winnable by everyone who matched them
	a.Equal(150, pots[0].Amount)
	a.Equal([]int64{1, 2, 3}, pots[0].EligiblePlayerIDs())

	// only the unmatched remainder is the all-in player's alone
	a.Equal(5, pots[1].Amount)
	a.Equal([]int64{3}, pots[1].EligiblePlayerIDs())

	// the best hand takes the matched pot even against the all-in
	tiers := NewWinTiers()
	tiers.AddPlayer(p1, 300)
	tiers.AddPlayer(p2, 200)
	tiers.AddPlayer(p3, 100)

	payouts, err := pm.AwardPots(tiers.Resolver())
	a.NoError(err)
	a.Equal(map[int64]int{1: 150, 3: 5}, payouts)
	a.Equal(200, p1.Balance())
	a.Equal(5, p3.Balance())
}

func TestPotManager_foldedAllInContributor(t *testing.T) {
	a := assert.New(t)

	p1 := player.New(1, 100)
	p2 := player.New(2, 100)
	p3 := player.New(3, 30)
	p4 := player.New(4, 100)
	pm := New([]*player.Player{p1, p2, p3, p4})

	contribute(pm, p1, 60)
	contribute(pm, p2, 60)
	contribute(pm, p3, 30) // all-in
	contribute(pm, p4, 20)
	p4.Fold()

	pots := pm.CalculateSidePots()
	a.Equal(2, len(pots))

	// folded chips still count toward the amounts
	a.Equal(110, pots[0].Amount)
	a.Equal([]int64{1, 2, 3}, pots[0].EligiblePlayerIDs())

	a.Equal(60, pots[1].Amount)
	a.Equal([]int64{1, 2}, pots[1].EligiblePlayerIDs())

	a.Equal(170, pm.TotalContributions())
}

func TestPotManager_recalculatesWholesale(t *testing.T) {
	a := assert.New(t)

	p1 := player.New(1, 200)
	p2 := player.New(2, 50)
	pm := New([]*player.Player{p1, p2})

	contribute(pm, p1, 20)
	contribute(pm, p2, 20)
	a.Equal(1, len(pm.Pots()))

	// a new all-in level re-splits from the totals
	contribute(pm, p1, 50)
	contribute(pm, p2, 30) // all-in at 50

	pots := pm.Pots()
	a.Equal(2, len(pots))
	a.Equal(100, pots[0].Amount)
	a.Equal(20, pots[1].Amount)
	a.Equal([]int64{1}, pots[1].EligiblePlayerIDs())
}

func TestPotManager_oddChips(t *testing.T) {
	a := assert.New(t)

	p1 := player.New(1, 100)
	p2 := player.New(2, 100)
	p3 := player.New(3, 100)
	pm := New([]*player.Player{p1, p2, p3})

	contribute(pm, p1, 25)
	contribute(pm, p2, 25)
	contribute(pm, p3, 25)

	// two-way tie on a 75 chip pot: the extra chip goes to the winner
	// closest to the dealer's left
	tie := func(eligible []*player.Player) [][]*player.Player {
		return [][]*player.Player{{p3, p2}}
	}

	payouts, err := pm.AwardPots(tie)
	a.NoError(err)
	a.Equal(map[int64]int{2: 38, 3: 37}, payouts)
}

func TestPotManager_hiLoGroups(t *testing.T) {
	a := assert.New(t)

	p1 := player.New(1, 100)
	p2 := player.New(2, 100)
	p3 := player.New(3, 100)
	pm := New([]*player.Player{p1, p2, p3})

	contribute(pm, p1, 25)
	contribute(pm, p2, 25)
	contribute(pm, p3, 25)

	// p1 wins high, p2 wins low; the odd chip goes to the high side
	hiLo := func(eligible []*player.Player) [][]*player.Player {
		return [][]*player.Player{{p1}, {p2}}
	}

	payouts, err := pm.AwardPots(hiLo)
	a.NoError(err)
	a.Equal(map[int64]int{1: 38, 2: 37}, payouts)
	a.Equal(75, pm.TotalContributions())
}

func TestPotManager_zeroEligibleFallback(t *testing.T) {
	a := assert.New(t)

	p1 := player.New(1, 100)
	p2 := player.New(2, 100)
	p3 := player.New(3, 100)
	pm := New([]*player.Player{p1, p2, p3})

	contribute(pm, p1, 20)
	contribute(pm, p2, 20)
	p1.Fold()
	p2.Fold()

	pots := pm.CalculateSidePots()
	a.Equal(1, len(pots))
	a.Empty(pots[0].EligiblePlayerIDs())

	// inconsistent records fall back to every non-folded player
	var sawFallback []*player.Player
	resolver := func(eligible []*player.Player) [][]*player.Player {
		sawFallback = eligible
		return [][]*player.Player{eligible}
	}

	payouts, err := pm.AwardPots(resolver)
	a.NoError(err)
	a.Equal(1, len(sawFallback))
	a.Equal(int64(3), sawFallback[0].ID())
	a.Equal(map[int64]int{3: 40}, payouts)
}

func TestPotManager_invariants(t *testing.T) {
	a := assert.New(t)

	p1 := player.New(1, 100)
	pm := New([]*player.Player{p1})

	a.Panics(func() {
		pm.AddContribution(99, 10)
	})
	a.Panics(func() {
		pm.AddContribution(1, -5)
	})
}
