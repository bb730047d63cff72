// Package fuzzydate models partially known calendar dates: values whose
// year, month, and day components may each be absent, such as "sometime in
// 2018" or "March 2019".
//
// Every date is built through a validating constructor backed by a
// composable ruleset, carries a total order that sorts absent components
// before populated ones, and never changes after construction. A companion
// Range type pairs two fuzzy dates under the same validation scheme.
//
// # Architecture
//
// Three pieces cooperate:
//
//   - Date and Range are immutable value types. The zero value of each is
//     the fully unknown date or range and always valid.
//   - Ruleset is an ordered registry of validation rules, split by target
//     type. Construction dispatches a candidate only to rules of its kind,
//     runs them in registration order, and aborts on the first violation.
//     Rulesets are immutable after construction and safe to share.
//   - The rules themselves are small functions built on
//     github.com/dmitrymomot/fuzzydate/pkg/validator, so custom constraints
//     compose with the built-in ones.
//
// Package-level constructors delegate to a process-wide default ruleset.
// Replace it once at startup with SetDefault, or hold a custom Ruleset and
// use its constructor methods directly for injected validation contexts.
//
// # Usage
//
//	d, err := fuzzydate.NewYearMonth(2019, 3)
//	if err != nil {
//	    // a rule rejected the candidate
//	}
//
//	later, _ := fuzzydate.NewYear(2020)
//	if d.Before(later) {
//	    // absence sorts before presence at every component level
//	}
//
//	strict := fuzzydate.NewRuleset(
//	    fuzzydate.WithDateRules(fuzzydate.PartsHierarchy, fuzzydate.YearBetween(1900, 2100)),
//	)
//	d, err = strict.Parse("2019/03/21")
//
// Dates travel through JSON, BSON, YAML, database columns, and environment
// variables via the standard marshaler interfaces. The structured Fields
// form keeps absent components distinct from zero values; the canonical
// text form covers the prefix shapes "YYYY", "YYYY/MM", and "YYYY/MM/DD".
//
// # Error Handling
//
// Rule violations surface as validator.ValidationErrors carrying the field
// and message of the violated rule; no partially constructed value escapes.
// Malformed text fails with ErrInvalidFormat, and dates that cannot be
// expressed in the canonical text form fail marshaling with
// ErrNotCanonical. All errors are synchronous and support errors.Is and
// errors.As.
//
// # Display
//
// String renders a diagnostic form only. Production rendering belongs to an
// external Formatter implementation supplied by the consumer.
package fuzzydate
