package potmanager

import (
	"sort"

	"cardroom/pkg/poker/player"
)

type tier struct {
	strength int
	players  []*player.Player
}

// WinTiers groups players by hand strength for pot resolution
type WinTiers map[int]*tier

// NewWinTiers returns an empty WinTiers
func NewWinTiers() WinTiers {
	return make(WinTiers)
}

// AddPlayer adds a player at the given hand strength
func (w WinTiers) AddPlayer(p *player.Player, strength int) {
	t, ok := w[strength]
	if !ok {
		t = &tier{
			strength: strength,
			players:  make([]*player.Player, 0),
		}
		w[strength] = t
	}

	t.players = append(t.players, p)
}

// SortedTiers returns the players grouped by strength, strongest first
func (w WinTiers) SortedTiers() [][]*player.Player {
	tiers := make([]*tier, 0, len(w))
	for _, t := range w {
		tiers = append(tiers, t)
	}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].strength > tiers[j].strength
	})

	grouped := make([][]*player.Player, len(tiers))
	for i, t := range tiers {
		grouped[i] = t.players
	}

	return grouped
}

// Resolver returns a Resolver that awards each pot to the strongest eligible
// players. Ties at the top strength split the pot.
func (w WinTiers) Resolver() Resolver {
	tiers := w.SortedTiers()

	return func(eligible []*player.Player) [][]*player.Player {
		eligibleSet := make(map[int64]bool, len(eligible))
		for _, p := range eligible {
			eligibleSet[p.ID()] = true
		}

		for _, tierPlayers := range tiers {
			winners := make([]*player.Player, 0, len(tierPlayers))
			for _, p := range tierPlayers {
				if eligibleSet[p.ID()] {
					winners = append(winners, p)
				}
			}

			if len(winners) > 0 {
				return [][]*player.Player{winners}
			}
		}

		return nil
	}
}
