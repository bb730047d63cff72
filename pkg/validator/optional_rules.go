package validator

import "fmt"

// Present validates that an optional component is populated.
func Present(field string, ok bool) Rule {
	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be present",
			TranslationKey: "validation.present",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiresPresence validates that a dependent optional component appears only
// when its prerequisite component is populated. An absent dependent always
// passes.
func RequiresPresence(field string, dependent bool, prerequisiteField string, prerequisite bool) Rule {
	return Rule{
		Check: func() bool {
			return !dependent || prerequisite
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("requires %s to be present", prerequisiteField),
			TranslationKey: "validation.requires_presence",
			TranslationValues: map[string]any{
				"field":    field,
				"requires": prerequisiteField,
			},
		},
	}
}
