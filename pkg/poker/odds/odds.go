// Package odds estimates win/tie/lose probabilities and hand-type
// distributions by Monte Carlo simulation.
package odds

import (
	"context"
	"errors"
	"fmt"

	"cardroom/internal/config"
	"cardroom/internal/rng"
	"cardroom/pkg/deck"
	"cardroom/pkg/poker/eval"
	"cardroom/pkg/poker/wild"

	"github.com/sirupsen/logrus"
)

// ErrNoHoleCards is returned when the input has no hole cards
var ErrNoHoleCards = errors.New("no hole cards provided")

// Input describes the situation to simulate
type Input struct {
	// Hole is the acting player's known cards
	Hole deck.Hand
	// Community is the already-revealed shared cards
	Community deck.Hand
	// Dead cards are excluded from the simulation deck
	Dead deck.Hand
	// Opponents is the number of other players still in the hand
	Opponents int
	// BoardSize is the total community card count at showdown. Zero means
	// five if the hole cards alone cannot make a hand, otherwise none.
	BoardSize int
	// Iterations defaults to the configured simulation count
	Iterations int
	// Workers defaults to the configured worker count
	Workers int
	// Wilds optionally determines wild cards per simulated hand
	Wilds wild.RuleSet
	// Eval selects the strength ordering
	Eval eval.Options
}

// Result holds simulation tallies normalized to probabilities
type Result struct {
	Iterations int                       `json:"iterations"`
	Win        float64                   `json:"win"`
	Tie        float64                   `json:"tie"`
	Lose       float64                   `json:"lose"`
	HandTypes  map[eval.HandRank]float64 `json:"handTypes"`
}

// Calculator runs Monte Carlo odds simulations. It is read-only with
// respect to game state and safe to run off the main game path.
type Calculator struct {
	gen    rng.Generator
	logger logrus.FieldLogger
}

// New instantiates a Calculator. The generator seeds the per-worker
// generators, so a seeded generator makes the whole run reproducible.
func New(gen rng.Generator, logger logrus.FieldLogger) *Calculator {
	return &Calculator{
		gen:    gen,
		logger: logger,
	}
}

type tally struct {
	wins      int
	ties      int
	losses    int
	handTypes map[eval.HandRank]int
}

// Calculate estimates the player's odds. It fans the iterations out over
// the configured workers and stops early if the context is canceled.
func (c *Calculator) Calculate(ctx context.Context, input Input) (*Result, error) {
	input = withDefaults(input)

	if err := validate(input); err != nil {
		return nil, err
	}

	remaining, err := c.remainingCards(input)
	if err != nil {
		return nil, err
	}

	workers := input.Workers
	if workers > input.Iterations {
		workers = input.Iterations
	}

	perWorker := input.Iterations / workers
	extra := input.Iterations % workers

	results := make(chan tally, workers)
	for w := 0; w < workers; w++ {
		iterations := perWorker
		if w < extra {
			iterations++
		}

		gen := rng.NewSeeded(int64(c.gen.Intn(1 << 30)))
		go func(iterations int, gen rng.Generator) {
			results <- c.simulate(ctx, input, remaining, gen, iterations)
		}(iterations, gen)
	}

	combined := tally{handTypes: make(map[eval.HandRank]int)}
	for w := 0; w < workers; w++ {
		t := <-results
		combined.wins += t.wins
		combined.ties += t.ties
		combined.losses += t.losses
		for rank, count := range t.handTypes {
			combined.handTypes[rank] += count
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"iterations": input.Iterations,
		"opponents":  input.Opponents,
	}).Debug("simulation complete")

	return normalize(combined, input.Iterations), nil
}

// simulate runs a worker's share of the iterations, checking for
// cancellation between iterations
func (c *Calculator) simulate(ctx context.Context, input Input, remaining deck.Hand, gen rng.Generator, iterations int) tally {
	t := tally{handTypes: make(map[eval.HandRank]int)}
	cards := make(deck.Hand, len(remaining))

	for i := 0; i < iterations; i++ {
		select {
		case <-ctx.Done():
			return t
		default:
		}

		copy(cards, remaining)
		rng.Shuffle(gen, len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})

		c.simulateOnce(input, cards, &t)
	}

	return t
}

// simulateOnce completes the board and the opponents' hands from the
// shuffled cards, then compares showdown strengths
func (c *Calculator) simulateOnce(input Input, shuffled deck.Hand, t *tally) {
	next := 0
	draw := func() deck.Card {
		card := shuffled[next]
		next++
		return card
	}

	board := input.Community.Clone()
	for len(board) < input.BoardSize {
		board.AddCard(draw())
	}

	hero := c.evaluate(append(input.Hole.Clone(), board...), input)
	t.handTypes[hero.Rank]++

	bestOpponent := -1
	for opp := 0; opp < input.Opponents; opp++ {
		hand := make(deck.Hand, 0, len(input.Hole)+len(board))
		for i := 0; i < len(input.Hole); i++ {
			hand.AddCard(draw())
		}

		res := c.evaluate(append(hand, board...), input)
		if res.Strength > bestOpponent {
			bestOpponent = res.Strength
		}
	}

	switch {
	case bestOpponent > hero.Strength:
		t.losses++
	case bestOpponent == hero.Strength:
		t.ties++
	default:
		t.wins++
	}
}

func (c *Calculator) evaluate(cards deck.Hand, input Input) eval.Result {
	var wilds map[deck.Card]bool
	if input.Wilds != nil {
		wilds = input.Wilds.DetermineWildCards(cards)
	}

	return eval.Evaluate(cards, wilds, input.Eval)
}

// remainingCards builds the simulation deck: a full deck minus the hole,
// community, and dead cards
func (c *Calculator) remainingCards(input Input) (deck.Hand, error) {
	d := deck.New(c.gen)

	known := make(deck.Hand, 0, len(input.Hole)+len(input.Community)+len(input.Dead))
	known = append(known, input.Hole...)
	known = append(known, input.Community...)
	known = append(known, input.Dead...)

	for _, card := range known {
		if d.Remove(card) == 0 {
			return nil, fmt.Errorf("duplicate card: %s", deck.CardToString(card))
		}
	}

	needed := (input.BoardSize - len(input.Community)) + input.Opponents*len(input.Hole)
	if d.CardsLeft() < needed {
		return nil, fmt.Errorf("not enough cards to simulate: need %d, have %d", needed, d.CardsLeft())
	}

	return d.Cards, nil
}

func withDefaults(input Input) Input {
	cfg := config.Instance()
	if input.Iterations <= 0 {
		input.Iterations = cfg.Simulation.Iterations
	}

	if input.Workers <= 0 {
		input.Workers = cfg.Simulation.Workers
	}

	if input.BoardSize == 0 && len(input.Hole) < 5 {
		input.BoardSize = 5
	}

	if input.BoardSize < len(input.Community) {
		input.BoardSize = len(input.Community)
	}

	return input
}

func validate(input Input) error {
	if len(input.Hole) == 0 {
		return ErrNoHoleCards
	}

	if input.Opponents < 0 {
		return fmt.Errorf("opponent count cannot be negative: %d", input.Opponents)
	}

	if len(input.Hole)+input.BoardSize < 5 {
		return fmt.Errorf("cannot make a five-card hand from %d cards", len(input.Hole)+input.BoardSize)
	}

	return nil
}

func normalize(t tally, iterations int) *Result {
	result := &Result{
		Iterations: iterations,
		Win:        float64(t.wins) / float64(iterations),
		Tie:        float64(t.ties) / float64(iterations),
		Lose:       float64(t.losses) / float64(iterations),
		HandTypes:  make(map[eval.HandRank]float64, len(t.handTypes)),
	}

	for rank, count := range t.handTypes {
		result.HandTypes[rank] = float64(count) / float64(iterations)
	}

	return result
}
