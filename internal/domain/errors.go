package domain

import "strings"

// FieldError is a single validation failure attached to a form field.
// An empty Field means the error applies to the submission as a whole.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full set of validation failures for one
// submission. It implements error so services can return it directly;
// callers unwrap it to redisplay per-field messages. Either the whole
// record is accepted or none of it is persisted.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		if fe.Field != "" {
			msgs = append(msgs, fe.Field+": "+fe.Message)
		} else {
			msgs = append(msgs, fe.Message)
		}
	}
	return strings.Join(msgs, "; ")
}

// Add appends a failure for the given field.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}
