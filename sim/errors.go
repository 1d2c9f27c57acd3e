package sim

import "fmt"

// ValidationError reports caller input that failed validation: an unknown
// catalog name, or a scalar outside its allowed range. Validation failures
// are surfaced immediately and never recovered internally.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErrorf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup of an entity that does not exist, such as
// a segment number absent from a track. Callers must treat this as "no such
// entity"; the engine never substitutes a zero or default value.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
