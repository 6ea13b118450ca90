package eval

import "cardroom/pkg/deck"

// HiLoOptions configures a split-pot evaluation
type HiLoOptions struct {
	High Options
	Low  LowOptions
}

// HiLoResult pairs a high and a low evaluation of the same cards
type HiLoResult struct {
	High Result
	Low  LowResult
}

// EvaluateHiLo evaluates the cards for both the high and the low side
func EvaluateHiLo(cards deck.Hand, wilds map[deck.Card]bool, opts HiLoOptions) HiLoResult {
	return HiLoResult{
		High: Evaluate(cards, wilds, opts.High),
		Low:  EvaluateLow(cards, wilds, opts.Low),
	}
}

// HiLoComparison reports which side(s) each of two hands wins.
// Values are 1 if the first hand wins the side, -1 if the second does, and
// 0 on a tie. Low is 0 when neither hand qualifies for low. Scoop is set
// when one hand wins the high side and there is no low split against it.
type HiLoComparison struct {
	High  int
	Low   int
	Scoop int
}

// CompareHiLo compares two hi/lo results
func CompareHiLo(a, b HiLoResult) HiLoComparison {
	c := HiLoComparison{
		High: sign(a.High.Strength - b.High.Strength),
	}

	if a.Low.Qualifies || b.Low.Qualifies {
		c.Low = sign(a.Low.Strength - b.Low.Strength)
	}

	noLow := !a.Low.Qualifies && !b.Low.Qualifies
	if c.High == 1 && (c.Low == 1 || noLow) {
		c.Scoop = 1
	} else if c.High == -1 && (c.Low == -1 || noLow) {
		c.Scoop = -1
	}

	return c
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}

	return 0
}
