package resource

import (
	"fmt"
	"strings"
)

// ValidationError lists the required fields that were blank or missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s is required", e.Fields[0])
	}
	return fmt.Sprintf("%s are required", strings.Join(e.Fields, ", "))
}

// Validate checks required-field presence only. Referenced ids must be
// non-zero; whether they resolve is left to the store.
func (k Kind[T]) Validate(rec *T) error {
	if rec == nil {
		return &ValidationError{Fields: []string{"body"}}
	}
	var missing []string
	for _, f := range k.Fields {
		if f.Required && isBlank(f.Get(rec)) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

type zeroer interface {
	IsZero() bool
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case uint64:
		return v == 0
	case *float64:
		return v == nil
	case zeroer:
		return v.IsZero()
	default:
		return false
	}
}
