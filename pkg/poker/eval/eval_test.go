package eval

import (
	"testing"

	"cardroom/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func evaluate(s string) Result {
	return Evaluate(deck.CardsFromString(s), nil, Options{})
}

func TestEvaluate_categories(t *testing.T) {
	a := assert.New(t)

	a.Equal(RoyalFlush, evaluate("10h,11h,12h,13h,14h").Rank)
	a.Equal(StraightFlush, evaluate("5s,6s,7s,8s,9s").Rank)
	a.Equal(FourOfAKind, evaluate("2c,3c,3d,3h,3s").Rank)
	a.Equal(FullHouse, evaluate("5c,5d,5h,9s,9c").Rank)
	a.Equal(Flush, evaluate("2h,5h,9h,11h,13h").Rank)
	a.Equal(Straight, evaluate("5c,6d,7h,8s,9c").Rank)
	a.Equal(ThreeOfAKind, evaluate("5c,5d,5h,9s,10c").Rank)
	a.Equal(TwoPair, evaluate("5c,5d,9h,9s,10c").Rank)
	a.Equal(OnePair, evaluate("5c,5d,8h,9s,10c").Rank)
	a.Equal(HighCard, evaluate("2c,5d,8h,9s,13c").Rank)

	// the wheel plays ace low
	wheel := evaluate("14c,2d,3h,4s,5c")
	a.Equal(Straight, wheel.Rank)
	a.Greater(evaluate("2c,3d,4h,5s,6c").Strength, wheel.Strength)

	// a wheel in one suit is a straight flush, not a royal
	a.Equal(StraightFlush, evaluate("14s,2s,3s,4s,5s").Rank)
}

func TestEvaluate_bestSubset(t *testing.T) {
	a := assert.New(t)

	// seven cards; the flush beats the straight
	res := evaluate("5h,6h,7h,8c,9h,2h,8d")
	a.Equal(Flush, res.Rank)
	a.Equal(5, len(res.Best))
	for _, c := range res.Best {
		a.Equal(deck.Hearts, c.Suit)
	}

	// kickers break ties between equal pairs
	better := evaluate("14c,14d,13h,9s,5c")
	worse := evaluate("14h,14s,12h,9d,5d")
	a.Greater(better.Strength, worse.Strength)
}

func TestEvaluate_requiresFiveCards(t *testing.T) {
	assert.Panics(t, func() {
		evaluate("2c,3d,4h,5s")
	})
}

func TestEvaluate_wilds(t *testing.T) {
	a := assert.New(t)

	// three wilds plus an ace make four aces
	cards := deck.CardsFromString("2c,5d,5h,9s,14c")
	wilds := deck.CardsFromString("2c,5d,5h").CardSet()

	res := Evaluate(cards, wilds, Options{})
	a.Equal(FourOfAKind, res.Rank)
	a.Equal(3, len(res.Substitutions))

	natural := evaluate("14c,14d,14h,14s,9s")
	a.Equal(natural.Strength, res.Strength)

	// a single wild completes the straight flush
	cards = deck.CardsFromString("5s,6s,8s,9s,2d")
	wilds = deck.CardsFromString("2d").CardSet()
	res = Evaluate(cards, wilds, Options{})
	a.Equal(StraightFlush, res.Rank)
	a.Equal(deck.CardFromString("7s"), res.Substitutions[deck.CardFromString("2d")])
}

func TestEvaluate_wildMonotonicOptimum(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("2c,7d,9s,10c,14c")
	wildCard := deck.CardFromString("2c")
	withWild := Evaluate(cards, deck.Hand{wildCard}.CardSet(), Options{})

	// no specific substitution may beat the wild evaluation
	bestManual := -1
	for rank := 2; rank <= deck.Ace; rank++ {
		for _, suit := range deck.Suits {
			substituted := cards.Clone()
			substituted[0] = deck.Card{Rank: rank, Suit: suit}

			manual := Evaluate(substituted, nil, Options{})
			a.GreaterOrEqual(withWild.Strength, manual.Strength)
			if manual.Strength > bestManual {
				bestManual = manual.Strength
			}
		}
	}

	a.Equal(bestManual, withWild.Strength)
}

func TestEvaluate_shortDeckOrdering(t *testing.T) {
	a := assert.New(t)

	flush := deck.CardsFromString("2h,5h,9h,11h,13h")
	fullHouse := deck.CardsFromString("5c,5d,5h,9s,9c")

	classicFlush := Evaluate(flush, nil, Options{Ordering: Classic})
	classicBoat := Evaluate(fullHouse, nil, Options{Ordering: Classic})
	a.Greater(classicBoat.Strength, classicFlush.Strength)

	shortFlush := Evaluate(flush, nil, Options{Ordering: ShortDeck})
	shortBoat := Evaluate(fullHouse, nil, Options{Ordering: ShortDeck})
	a.Greater(shortFlush.Strength, shortBoat.Strength)

	// straight flush still beats both
	shortSF := Evaluate(deck.CardsFromString("5s,6s,7s,8s,9s"), nil, Options{Ordering: ShortDeck})
	a.Greater(shortSF.Strength, shortFlush.Strength)
}

func TestForEachCombination(t *testing.T) {
	a := assert.New(t)

	count := 0
	forEachCombination(7, 5, func(indexes []int) {
		count++
	})
	a.Equal(21, count)

	count = 0
	forEachCombination(5, 5, func(indexes []int) {
		a.Equal([]int{0, 1, 2, 3, 4}, indexes)
		count++
	})
	a.Equal(1, count)
}
