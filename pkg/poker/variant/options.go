package variant

import (
	"errors"
	"fmt"

	"cardroom/pkg/deck"
	"cardroom/pkg/poker/wild"
)

// Code identifies a poker variant
type Code string

// supported variants
const (
	Holdem       Code = "holdem"
	SevenStud    Code = "sevenstud"
	FiveCardDraw Code = "fivecarddraw"
)

// WildMode selects how wild cards are determined
type WildMode string

// wild modes
const (
	WildNone    WildMode = "none"
	WildFixed   WildMode = "fixed"
	WildDynamic WildMode = "dynamic"
	WildHybrid  WildMode = "hybrid"
)

// Options configures a hand. Variant selects which of the per-variant
// blocks applies; the other blocks must be nil. Validate enforces the
// shape up front so phase code never re-checks it.
type Options struct {
	Variant Code           `json:"variant" yaml:"variant"`
	Ante    int            `json:"ante" yaml:"ante"`
	Holdem  *HoldemOptions `json:"holdem,omitempty" yaml:"holdem"`
	Stud    *StudOptions   `json:"stud,omitempty" yaml:"stud"`
	Draw    *DrawOptions   `json:"draw,omitempty" yaml:"draw"`
}

// HoldemOptions configures the community-card variant
type HoldemOptions struct {
	SmallBlind int `json:"smallBlind" yaml:"smallBlind"`
	BigBlind   int `json:"bigBlind" yaml:"bigBlind"`
}

// StudOptions configures the seven-card stud variant
type StudOptions struct {
	// BringIn is the forced opening bet on third street.
	// Defaults to half the ante, minimum one chip.
	BringIn int `json:"bringIn" yaml:"bringIn"`
	// BetSize is the fixed bet for the streets. Defaults to the ante.
	BetSize int `json:"betSize" yaml:"betSize"`
	// Wild selects the wild-card rule; WildRanks names the fixed ranks
	Wild      WildMode `json:"wild" yaml:"wild"`
	WildRanks []int    `json:"wildRanks,omitempty" yaml:"wildRanks"`
	// HiLo splits the pot between the best high and best qualifying low
	HiLo bool `json:"hiLo" yaml:"hiLo"`
	// BuyCardPrice offers a paid extra up-card after fifth street.
	// Zero disables the offer.
	BuyCardPrice int `json:"buyCardPrice" yaml:"buyCardPrice"`
}

// DrawOptions configures the five-card draw variant
type DrawOptions struct {
	// Discards is the allowed discard counts. Defaults to 0 through 3.
	Discards []int `json:"discards,omitempty" yaml:"discards"`
	// DropOrStay adds a declare phase before showdown; players who stay
	// and lose match the pot, which carries over to the next hand
	DropOrStay bool `json:"dropOrStay" yaml:"dropOrStay"`
}

// DefaultOptions returns a playable configuration for the variant
func DefaultOptions(code Code) Options {
	switch code {
	case Holdem:
		return Options{
			Variant: Holdem,
			Holdem:  &HoldemOptions{SmallBlind: 25, BigBlind: 50},
		}
	case SevenStud:
		return Options{
			Variant: SevenStud,
			Ante:    25,
			Stud:    &StudOptions{Wild: WildNone},
		}
	case FiveCardDraw:
		return Options{
			Variant: FiveCardDraw,
			Ante:    25,
			Draw:    &DrawOptions{},
		}
	}

	panic(fmt.Sprintf("unknown variant: %s", code))
}

// Validate checks the options and fills in defaults
func (o *Options) Validate() error {
	if o.Ante < 0 {
		return errors.New("ante cannot be negative")
	}

	switch o.Variant {
	case Holdem:
		if o.Stud != nil || o.Draw != nil {
			return errors.New("holdem options cannot include stud or draw settings")
		}

		if o.Holdem == nil {
			return errors.New("holdem settings are required")
		}

		return o.Holdem.validate()
	case SevenStud:
		if o.Holdem != nil || o.Draw != nil {
			return errors.New("stud options cannot include holdem or draw settings")
		}

		if o.Stud == nil {
			return errors.New("stud settings are required")
		}

		if o.Ante <= 0 {
			return errors.New("stud requires an ante")
		}

		return o.Stud.validate(o.Ante)
	case FiveCardDraw:
		if o.Holdem != nil || o.Stud != nil {
			return errors.New("draw options cannot include holdem or stud settings")
		}

		if o.Draw == nil {
			return errors.New("draw settings are required")
		}

		if o.Ante <= 0 {
			return errors.New("draw requires an ante")
		}

		return o.Draw.validate()
	}

	return &UnsupportedVariantError{Code: o.Variant}
}

func (h *HoldemOptions) validate() error {
	if h.BigBlind <= 0 {
		return errors.New("big blind must be greater than zero")
	}

	if h.SmallBlind <= 0 || h.SmallBlind > h.BigBlind {
		return errors.New("small blind must be between one chip and the big blind")
	}

	return nil
}

func (s *StudOptions) validate(ante int) error {
	if s.BetSize == 0 {
		s.BetSize = ante
	}

	if s.BetSize < 0 {
		return errors.New("bet size cannot be negative")
	}

	if s.BringIn == 0 {
		s.BringIn = ante / 2
		if s.BringIn == 0 {
			s.BringIn = 1
		}
	}

	if s.BringIn < 0 || s.BringIn > s.BetSize {
		return errors.New("bring-in must be between one chip and the bet size")
	}

	if s.BuyCardPrice < 0 {
		return errors.New("buy-card price cannot be negative")
	}

	if s.Wild == "" {
		s.Wild = WildNone
	}

	if _, err := s.wildRuleSet(); err != nil {
		return err
	}

	return nil
}

// wildRuleSet builds the wild-card rule the options describe
func (s *StudOptions) wildRuleSet() (wild.RuleSet, error) {
	switch s.Wild {
	case WildNone:
		return wild.None{}, nil
	case WildFixed:
		if len(s.WildRanks) == 0 {
			return nil, errors.New("fixed wild mode requires at least one rank")
		}

		for _, rank := range s.WildRanks {
			if rank < 2 || rank > deck.Ace {
				return nil, fmt.Errorf("invalid wild rank: %d", rank)
			}
		}

		return wild.NewFixedRank(s.WildRanks...), nil
	case WildDynamic:
		if len(s.WildRanks) > 0 {
			return nil, errors.New("dynamic wild mode does not take ranks")
		}

		return wild.DynamicLowest{}, nil
	case WildHybrid:
		if len(s.WildRanks) != 1 {
			return nil, errors.New("hybrid wild mode requires exactly one rank")
		}

		if s.WildRanks[0] < 2 || s.WildRanks[0] > deck.Ace {
			return nil, fmt.Errorf("invalid wild rank: %d", s.WildRanks[0])
		}

		return wild.NewHybrid(s.WildRanks[0]), nil
	}

	return nil, fmt.Errorf("unknown wild mode: %s", s.Wild)
}

func (d *DrawOptions) validate() error {
	if len(d.Discards) == 0 {
		d.Discards = []int{0, 1, 2, 3}
	}

	for _, count := range d.Discards {
		if count < 0 || count > 5 {
			return fmt.Errorf("invalid discard option: %d", count)
		}
	}

	return nil
}

// canDiscard returns true if the count is an allowed discard
func (d *DrawOptions) canDiscard(count int) bool {
	for _, allowed := range d.Discards {
		if allowed == count {
			return true
		}
	}

	return false
}
