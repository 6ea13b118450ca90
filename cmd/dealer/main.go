package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"cardroom/internal/config"
	"cardroom/internal/rng"
	"cardroom/pkg/deck"
	"cardroom/pkg/poker/action"
	"cardroom/pkg/poker/eval"
	"cardroom/pkg/poker/odds"
	"cardroom/pkg/poker/player"
	"cardroom/pkg/poker/variant"

	"github.com/sirupsen/logrus"
)

const simulationTimeout = time.Second * 30

// Version is the dealer version
var Version = "v0.0.0-dev"

var (
	versionFlag   = flag.Bool("version", false, "print the version and exit")
	variantFlag   = flag.String("variant", "holdem", "variant to deal: holdem, sevenstud, or fivecarddraw")
	playersFlag   = flag.Int("players", 4, "number of players at the table")
	balanceFlag   = flag.Int("balance", 1000, "starting balance per player")
	seedFlag      = flag.Int64("seed", 0, "seed for a reproducible deal (0 uses a crypto source)")
	oddsFlag      = flag.String("odds", "", "hole cards to simulate instead of dealing a hand, i.e. 14s,14c")
	communityFlag = flag.String("community", "", "community cards for the odds simulation")
	opponentsFlag = flag.Int("opponents", 1, "opponent count for the odds simulation")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(Version)
		return
	}

	setupLogger()

	gen := generator()

	if *oddsFlag != "" {
		runOdds(gen)
		return
	}

	runHand(gen)
}

func generator() rng.Generator {
	if *seedFlag != 0 {
		return rng.NewSeeded(*seedFlag)
	}

	return rng.Crypto{}
}

// runOdds prints win/tie/lose probabilities for the hole cards
func runOdds(gen rng.Generator) {
	input := odds.Input{
		Hole:      deck.CardsFromString(*oddsFlag),
		Opponents: *opponentsFlag,
	}

	if *communityFlag != "" {
		input.Community = deck.CardsFromString(*communityFlag)
	}

	ctx, cancel := context.WithTimeout(context.Background(), simulationTimeout)
	defer cancel()

	calc := odds.New(gen, logrus.StandardLogger())
	result, err := calc.Calculate(ctx, input)
	if err != nil {
		logrus.WithError(err).Fatal("could not calculate odds")
	}

	fmt.Printf("%s vs. %d opponent(s) over %d iterations\n", input.Hole, *opponentsFlag, result.Iterations)
	fmt.Printf("win: %5.1f%%  tie: %5.1f%%  lose: %5.1f%%\n", result.Win*100, result.Tie*100, result.Lose*100)

	ranks := make([]eval.HandRank, 0, len(result.HandTypes))
	for rank := range result.HandTypes {
		ranks = append(ranks, rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	for _, rank := range ranks {
		fmt.Printf("%-16s %5.1f%%\n", rank, result.HandTypes[rank]*100)
	}
}

// runHand deals a hand and plays every seat passively to a showdown
func runHand(gen rng.Generator) {
	code := variant.Code(*variantFlag)
	switch code {
	case variant.Holdem, variant.SevenStud, variant.FiveCardDraw:
	default:
		logrus.Fatalf("unknown variant: %s", *variantFlag)
	}

	players := make([]*player.Player, *playersFlag)
	for i := range players {
		players[i] = player.New(int64(i+1), *balanceFlag)
	}

	h, err := variant.New(logrus.StandardLogger(), gen, players, variant.DefaultOptions(code))
	if err != nil {
		logrus.WithError(err).Fatal("could not create hand")
	}

	if err := h.Start(); err != nil {
		logrus.WithError(err).Fatal("could not start hand")
	}

	for {
		id, ok := h.CurrentActorID()
		if !ok {
			break
		}

		if autoplay(h, id).HandComplete {
			break
		}
	}

	for _, msg := range h.Log().History() {
		if len(msg.Cards) > 0 {
			fmt.Printf("%s %s\n", msg.Message, msg.Cards)
			continue
		}

		fmt.Println(msg.Message)
	}

	results, ok := h.Results()
	if !ok {
		logrus.Fatal("hand did not complete")
	}

	fmt.Println()
	for _, sh := range results.Hands {
		fmt.Printf("player %d: %s (%s)\n", sh.PlayerID, sh.Cards, sh.HandRank)
	}

	for _, p := range players {
		fmt.Printf("player %d balance: %d (won %d)\n", p.ID(), p.Balance(), results.Payouts[p.ID()])
	}
}

// autoplay takes the cheapest available action for the seat: check or
// call in a betting round, stand pat on a draw, decline a buy, and stay
// in a declare round
func autoplay(h *variant.Hand, id int64) *variant.ActionResult {
	attempts := []action.Action{action.Check, action.Call, action.Discard, action.Stay, action.Fold}

	for _, act := range attempts {
		result, err := h.ProcessAction(variant.Input{PlayerID: id, Action: act})
		if err == nil {
			return result
		}
	}

	logrus.Fatalf("no playable action for player %d", id)
	return nil
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
