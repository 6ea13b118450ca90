package eval

import (
	"testing"

	"cardroom/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func evaluateLow(s string, qualifier int) LowResult {
	return EvaluateLow(deck.CardsFromString(s), nil, LowOptions{Qualifier: qualifier})
}

func TestEvaluateLow_aceToFive(t *testing.T) {
	a := assert.New(t)

	// the wheel is the best possible low; suits are ignored
	wheel := evaluateLow("14s,2s,3s,4s,5s", 8)
	a.True(wheel.Qualifies)
	a.Equal([]int{5, 4, 3, 2, 1}, wheel.Ranks)

	sixLow := evaluateLow("14c,2d,3h,4s,6c", 8)
	a.True(sixLow.Qualifies)
	a.Greater(wheel.Strength, sixLow.Strength)

	// a pair disqualifies the low
	a.False(evaluateLow("2c,2d,3h,4s,5c", 8).Qualifies)
	a.Equal(0, evaluateLow("2c,2d,3h,4s,5c", 8).Strength)

	// nine is above the eight qualifier
	a.False(evaluateLow("2c,4d,6h,8s,9c", 8).Qualifies)
	// no qualifier accepts it
	a.True(evaluateLow("2c,4d,6h,8s,9c", 0).Qualifies)
}

func TestEvaluateLow_bestSubset(t *testing.T) {
	a := assert.New(t)

	// seven cards; the paired sevens are skipped
	res := evaluateLow("14c,2d,3h,7s,7c,5d,13s", 8)
	a.True(res.Qualifies)
	a.Equal([]int{7, 5, 3, 2, 1}, res.Ranks)
}

func TestEvaluateLow_wilds(t *testing.T) {
	a := assert.New(t)

	// the wild takes the lowest rank missing from the hand
	cards := deck.CardsFromString("2c,3d,4h,5s,13c")
	wilds := deck.CardsFromString("13c").CardSet()

	res := EvaluateLow(cards, wilds, LowOptions{Qualifier: 8})
	a.True(res.Qualifies)
	a.Equal([]int{5, 4, 3, 2, 1}, res.Ranks)
}

func TestEvaluateLow_aceToSix(t *testing.T) {
	a := assert.New(t)

	// the wheel is a straight in ace-to-six
	res := EvaluateLow(deck.CardsFromString("14c,2d,3h,4s,5c"), nil, LowOptions{Ordering: AceToSix})
	a.False(res.Qualifies)

	// 6-4-3-2-A is the best ace-to-six low
	res = EvaluateLow(deck.CardsFromString("14c,2d,3h,4s,6c"), nil, LowOptions{Ordering: AceToSix})
	a.True(res.Qualifies)
	a.Equal([]int{6, 4, 3, 2, 1}, res.Ranks)

	// a flush counts against the hand
	res = EvaluateLow(deck.CardsFromString("14c,2c,3c,4c,6c"), nil, LowOptions{Ordering: AceToSix})
	a.False(res.Qualifies)
}
