package fuzzydate

import (
	"fmt"

	"github.com/dmitrymomot/fuzzydate/pkg/validator"
)

// DateRule builds a validation rule for a date candidate. Rules read only
// the candidate's public state and must be deterministic.
type DateRule func(Date) validator.Rule

// RangeRule builds a validation rule for a range candidate.
type RangeRule func(Range) validator.Rule

// Ruleset holds the ordered validation rules applied at construction time.
// Date rules see only dates and range rules only ranges. A Ruleset is
// immutable after construction and safe for concurrent use.
type Ruleset struct {
	dateRules  []DateRule
	rangeRules []RangeRule
}

// RulesetOption configures a Ruleset under construction.
type RulesetOption func(*rulesetOptions)

type rulesetOptions struct {
	dateRules    []DateRule
	rangeRules   []RangeRule
	skipDefaults bool
}

// WithDateRules appends date rules after the built-in ones.
func WithDateRules(rules ...DateRule) RulesetOption {
	return func(o *rulesetOptions) {
		o.dateRules = append(o.dateRules, rules...)
	}
}

// WithRangeRules appends range rules after the built-in ones.
func WithRangeRules(rules ...RangeRule) RulesetOption {
	return func(o *rulesetOptions) {
		o.rangeRules = append(o.rangeRules, rules...)
	}
}

// WithoutDefaults drops the built-in rules, leaving only the rules given
// through WithDateRules and WithRangeRules.
func WithoutDefaults() RulesetOption {
	return func(o *rulesetOptions) {
		o.skipDefaults = true
	}
}

// NewRuleset builds a ruleset. Unless WithoutDefaults is given, the built-in
// rules MonthInRange, DayInRange, and BoundedRange are registered first and
// any configured rules run after them in the order supplied.
func NewRuleset(opts ...RulesetOption) *Ruleset {
	var o rulesetOptions
	for _, opt := range opts {
		opt(&o)
	}

	rs := &Ruleset{}
	if !o.skipDefaults {
		rs.dateRules = append(rs.dateRules, MonthInRange, DayInRange)
		rs.rangeRules = append(rs.rangeRules, BoundedRange)
	}
	rs.dateRules = append(rs.dateRules, o.dateRules...)
	rs.rangeRules = append(rs.rangeRules, o.rangeRules...)
	return rs
}

var defaultRuleset = NewRuleset()

// Default returns the ruleset used by the package-level constructors.
func Default() *Ruleset {
	return defaultRuleset
}

// SetDefault replaces the ruleset used by the package-level constructors.
// Call it once during process startup before constructing any dates; it is
// not synchronized against concurrent construction. A nil ruleset restores
// the built-in defaults.
func SetDefault(rs *Ruleset) {
	if rs == nil {
		rs = NewRuleset()
	}
	defaultRuleset = rs
}

// Validate runs every date rule against d in registration order and stops
// at the first violation.
func (rs *Ruleset) Validate(d Date) error {
	rules := make([]validator.Rule, 0, len(rs.dateRules))
	for _, rule := range rs.dateRules {
		rules = append(rules, rule(d))
	}
	return validator.First(rules...)
}

// ValidateRange runs every range rule against r in registration order and
// stops at the first violation.
func (rs *Ruleset) ValidateRange(r Range) error {
	rules := make([]validator.Rule, 0, len(rs.rangeRules))
	for _, rule := range rs.rangeRules {
		rules = append(rules, rule(r))
	}
	return validator.First(rules...)
}

func (rs *Ruleset) validate(d Date) (Date, error) {
	if err := rs.Validate(d); err != nil {
		return Date{}, err
	}
	return d, nil
}

// MonthInRange requires a populated month to lie in the calendar range 1-12.
// Registered by default.
func MonthInRange(d Date) validator.Rule {
	m, ok := d.Month()
	if !ok {
		return satisfied()
	}
	return validator.Rule{
		Check: func() bool {
			return m >= 1 && m <= 12
		},
		Error: validator.ValidationError{
			Field:          "month",
			Message:        fmt.Sprintf("month %d is out of range [1, 12]", m),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": "month",
				"min":   1,
				"max":   12,
			},
		},
	}
}

// DayInRange requires a populated day to lie in the range 1-31, tightened to
// the month's length when the month is also populated. February allows 29
// while the year is unknown. Registered by default.
func DayInRange(d Date) validator.Rule {
	day, ok := d.Day()
	if !ok {
		return satisfied()
	}
	max := 31
	if m, ok := d.Month(); ok && m >= 1 && m <= 12 {
		max = daysInMonth(m, d)
	}
	return validator.Rule{
		Check: func() bool {
			return day >= 1 && day <= max
		},
		Error: validator.ValidationError{
			Field:          "day",
			Message:        fmt.Sprintf("day %d is out of range [1, %d]", day, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": "day",
				"min":   1,
				"max":   max,
			},
		},
	}
}

// BoundedRange forbids the end of a range preceding its start once both
// endpoints are fully specified. Partially known endpoints pass, since their
// order may be decided by components that are still unknown. Registered by
// default.
func BoundedRange(r Range) validator.Rule {
	if r.From().Specificity() != 3 || r.To().Specificity() != 3 {
		return satisfied()
	}
	return validator.Rule{
		Check: func() bool {
			return !r.To().Before(r.From())
		},
		Error: validator.ValidationError{
			Field:          "to",
			Message:        fmt.Sprintf("end date %s precedes start date %s", r.To(), r.From()),
			TranslationKey: "validation.range_order",
			TranslationValues: map[string]any{
				"field": "to",
				"from":  r.From().String(),
				"to":    r.To().String(),
			},
		},
	}
}

// PartsHierarchy requires a day to come with a month and a month with a
// year. Not registered by default; the base type deliberately allows gap
// dates such as a bare month.
func PartsHierarchy(d Date) validator.Rule {
	if d.HasMonth() && !d.HasYear() {
		return validator.RequiresPresence("month", true, "year", false)
	}
	return validator.RequiresPresence("day", d.HasDay(), "month", d.HasMonth())
}

// YearRequired rejects dates without a year. Not registered by default.
func YearRequired(d Date) validator.Rule {
	return validator.Present("year", d.HasYear())
}

// YearBetween bounds a populated year to the inclusive range [min, max].
// A zero bound leaves that side unbounded; dates without a year pass.
func YearBetween(min, max int) DateRule {
	return func(d Date) validator.Rule {
		y, ok := d.Year()
		if !ok {
			return satisfied()
		}
		switch {
		case min != 0 && max != 0:
			return validator.BetweenNum("year", y, min, max)
		case min != 0:
			return validator.MinNum("year", y, min)
		case max != 0:
			return validator.MaxNum("year", y, max)
		default:
			return satisfied()
		}
	}
}

// WithinBounds keeps dates with a populated year inside an inclusive window
// under the fuzzy order. An unknown endpoint leaves that side unbounded;
// dates without a year pass.
func WithinBounds(min, max Date) DateRule {
	return func(d Date) validator.Rule {
		if !d.HasYear() {
			return satisfied()
		}
		return validator.Rule{
			Check: func() bool {
				if !min.IsUnknown() && d.Before(min) {
					return false
				}
				if !max.IsUnknown() && d.After(max) {
					return false
				}
				return true
			},
			Error: validator.ValidationError{
				Field:          "date",
				Message:        fmt.Sprintf("date must be between %s and %s", min, max),
				TranslationKey: "validation.date_between",
				TranslationValues: map[string]any{
					"field": "date",
					"start": min.String(),
					"end":   max.String(),
				},
			},
		}
	}
}

func satisfied() validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
	}
}

func daysInMonth(month int, d Date) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if y, ok := d.Year(); ok && !leapYear(y) {
			return 28
		}
		return 29
	}
}
