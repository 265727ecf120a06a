package validator

// Validator validates annotated structs and reports field-level failures.
type Validator interface {
	// Validate returns nil when data passes, or an error carrying a
	// field-to-message map when it does not.
	Validate(data any) error
}
