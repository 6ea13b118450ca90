package odds

import (
	"context"
	"testing"

	"cardroom/internal/rng"
	"cardroom/pkg/deck"
	"cardroom/pkg/poker/eval"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func calculator(seed int64) *Calculator {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return New(rng.NewSeeded(seed), logger)
}

func TestCalculator_probabilitiesSumToOne(t *testing.T) {
	a := assert.New(t)

	c := calculator(1)
	result, err := c.Calculate(context.Background(), Input{
		Hole:       deck.CardsFromString("14s,13s"),
		Community:  deck.CardsFromString("2c,7d,10h"),
		Opponents:  2,
		Iterations: 500,
		Workers:    3,
	})
	a.NoError(err)
	a.Equal(500, result.Iterations)
	a.InDelta(1, result.Win+result.Tie+result.Lose, 0.000001)

	total := 0.0
	for _, p := range result.HandTypes {
		total += p
	}
	a.InDelta(1, total, 0.000001)
}

func TestCalculator_unbeatableHandIsDeterministic(t *testing.T) {
	a := assert.New(t)

	c := calculator(1)
	result, err := c.Calculate(context.Background(), Input{
		Hole:       deck.CardsFromString("10s,11s"),
		Community:  deck.CardsFromString("12s,13s,14s,2h,3d"),
		Opponents:  3,
		Iterations: 200,
	})
	a.NoError(err)
	a.Equal(float64(1), result.Win)
	a.Equal(float64(0), result.Tie)
	a.Equal(float64(0), result.Lose)
	a.Equal(map[eval.HandRank]float64{eval.RoyalFlush: 1}, result.HandTypes)
}

func TestCalculator_reproducibleWithSeed(t *testing.T) {
	a := assert.New(t)

	input := Input{
		Hole:       deck.CardsFromString("9c,9d"),
		Opponents:  1,
		Iterations: 300,
		Workers:    2,
	}

	r1, err := calculator(42).Calculate(context.Background(), input)
	a.NoError(err)

	r2, err := calculator(42).Calculate(context.Background(), input)
	a.NoError(err)

	a.Equal(r1, r2)
}

func TestCalculator_noOpponents(t *testing.T) {
	a := assert.New(t)

	c := calculator(7)
	result, err := c.Calculate(context.Background(), Input{
		Hole:       deck.CardsFromString("5c,6d"),
		Opponents:  0,
		Iterations: 50,
	})
	a.NoError(err)
	a.Equal(float64(1), result.Win)
}

func TestCalculator_validation(t *testing.T) {
	a := assert.New(t)

	c := calculator(1)
	ctx := context.Background()

	_, err := c.Calculate(ctx, Input{Opponents: 1})
	a.Equal(ErrNoHoleCards, err)

	_, err = c.Calculate(ctx, Input{
		Hole:      deck.CardsFromString("5c,5c"),
		Opponents: 1,
	})
	a.EqualError(err, "duplicate card: 5c")

	_, err = c.Calculate(ctx, Input{
		Hole:      deck.CardsFromString("5c,6c"),
		Opponents: -1,
	})
	a.EqualError(err, "opponent count cannot be negative: -1")

	_, err = c.Calculate(ctx, Input{
		Hole:      deck.CardsFromString("5c,6c"),
		Opponents: 30,
	})
	a.EqualError(err, "not enough cards to simulate: need 65, have 50")
}

func TestCalculator_cancellation(t *testing.T) {
	a := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := calculator(1)
	result, err := c.Calculate(ctx, Input{
		Hole:       deck.CardsFromString("5c,6d"),
		Opponents:  1,
		Iterations: 10000,
	})
	a.Nil(result)
	a.Equal(context.Canceled, err)
}
