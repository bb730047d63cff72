// Package config loads the fuzzydate validation policy, and any other
// configuration struct, from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`,
//     `MustRuleset`) for configuration the process cannot start without.
//   - Turns the parsed Policy into a ready fuzzydate.Ruleset.
//
// # Architecture
//
// Load is stateless: every call re-parses the current environment, so tests
// can adjust variables with t.Setenv and reload without cache juggling. The
// only process-wide effect is a one-time best-effort read of the default
// `.env` file before the first parse. Low-level parsing is delegated to
// `env.Parse`, which honors `encoding.TextUnmarshaler` fields, including
// fuzzydate.Date bounds in their canonical text form.
//
// # Usage
//
// Describe the policy through the environment:
//
//	FUZZYDATE_MIN_YEAR=1900
//	FUZZYDATE_MAX_YEAR=2100
//	FUZZYDATE_REQUIRE_PART_HIERARCHY=true
//	FUZZYDATE_NOT_AFTER=2100/12/31
//
// Then install it once at process startup:
//
//	import (
//	    "github.com/dmitrymomot/fuzzydate"
//	    "github.com/dmitrymomot/fuzzydate/pkg/config"
//	)
//
//	func main() {
//	    fuzzydate.SetDefault(config.MustRuleset())
//	    // ...
//	}
//
// Custom structs load the same way:
//
//	type ArchiveConfig struct {
//	    Oldest fuzzydate.Date `env:"ARCHIVE_OLDEST_DATE"`
//	}
//
//	var cfg ArchiveConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into the struct.
//   - `ErrLoadingEnv`    – a named `.env` file could not be read.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrInvalidPolicy` – policy bounds contradict each other.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
