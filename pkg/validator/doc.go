// Package validator provides the rule engine behind date validation: small
// Rule values that pair a boolean Check function with rich,
// translation-friendly error metadata.
//
// The package promotes declarative validation by letting you build Rule
// values and evaluate them with either Apply, which aggregates every failure
// into a ValidationErrors slice, or First, which stops at the first failure.
// Both return a plain error, making it convenient to bubble field-specific
// problems up through a single error return.
//
// # Architecture
//
// Each source file groups a family of rules for one concern: numeric_rules.go
// bounds numbers through the generic Numeric constraint, optional_rules.go
// covers presence and presence dependencies between optional fields. Every
// exported validation function simply constructs and returns a Rule instance;
// there is no hidden global state, therefore the package is completely
// stateless, allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - Numeric interface – generic constraint used by numeric helpers
//
// # Usage
//
//	err := validator.First(
//	    validator.Present("year", hasYear),
//	    validator.BetweenNum("month", month, 1, 12),
//	    validator.RequiresPresence("day", hasDay, "month", hasMonth),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface, so `errors.As` detects
// validation problems while preserving rich details. Individual field errors
// can be inspected with the helper methods Has, Get, GetErrors and Fields.
//
// # Performance Considerations
//
// All helpers are simple, allocation-free comparisons. Long-running or
// expensive validations should be implemented outside this package and
// adapted into a Rule where appropriate.
//
// # Examples
//
// See the companion *_test.go files for runnable examples covering each rule
// set.
package validator
