package config

import (
	"fmt"

	"github.com/dmitrymomot/fuzzydate"
)

// Policy is the environment-driven validation policy for fuzzy dates. It
// maps operational knobs onto the optional rules of the fuzzydate package;
// the zero value adds nothing beyond the built-in rules.
//
// The date bounds are parsed from their canonical text form, so
// FUZZYDATE_NOT_BEFORE=1900 or FUZZYDATE_NOT_AFTER=2100/12/31 both work.
type Policy struct {
	MinYear              int            `env:"FUZZYDATE_MIN_YEAR" envDefault:"0"`
	MaxYear              int            `env:"FUZZYDATE_MAX_YEAR" envDefault:"0"`
	RequireYear          bool           `env:"FUZZYDATE_REQUIRE_YEAR" envDefault:"false"`
	RequirePartHierarchy bool           `env:"FUZZYDATE_REQUIRE_PART_HIERARCHY" envDefault:"false"`
	NotBefore            fuzzydate.Date `env:"FUZZYDATE_NOT_BEFORE"`
	NotAfter             fuzzydate.Date `env:"FUZZYDATE_NOT_AFTER"`
}

// Ruleset builds the validation ruleset the policy describes: the built-in
// rules plus one optional rule per activated knob, in a fixed order. It
// fails with ErrInvalidPolicy when the bounds contradict each other.
func (p Policy) Ruleset() (*fuzzydate.Ruleset, error) {
	if p.MinYear != 0 && p.MaxYear != 0 && p.MinYear > p.MaxYear {
		return nil, fmt.Errorf("%w: FUZZYDATE_MIN_YEAR %d exceeds FUZZYDATE_MAX_YEAR %d",
			ErrInvalidPolicy, p.MinYear, p.MaxYear)
	}
	if !p.NotBefore.IsUnknown() && !p.NotAfter.IsUnknown() && p.NotBefore.After(p.NotAfter) {
		return nil, fmt.Errorf("%w: FUZZYDATE_NOT_BEFORE %s exceeds FUZZYDATE_NOT_AFTER %s",
			ErrInvalidPolicy, p.NotBefore, p.NotAfter)
	}

	var rules []fuzzydate.DateRule
	if p.RequireYear {
		rules = append(rules, fuzzydate.YearRequired)
	}
	if p.RequirePartHierarchy {
		rules = append(rules, fuzzydate.PartsHierarchy)
	}
	if p.MinYear != 0 || p.MaxYear != 0 {
		rules = append(rules, fuzzydate.YearBetween(p.MinYear, p.MaxYear))
	}
	if !p.NotBefore.IsUnknown() || !p.NotAfter.IsUnknown() {
		rules = append(rules, fuzzydate.WithinBounds(p.NotBefore, p.NotAfter))
	}

	return fuzzydate.NewRuleset(fuzzydate.WithDateRules(rules...)), nil
}

// MustRuleset loads the policy from the environment and builds its ruleset,
// panicking on failure. Intended for process startup:
//
//	fuzzydate.SetDefault(config.MustRuleset())
func MustRuleset() *fuzzydate.Ruleset {
	var p Policy
	MustLoad(&p)

	rs, err := p.Ruleset()
	if err != nil {
		panic(fmt.Sprintf("Failed to build validation ruleset: %v", err))
	}
	return rs
}
