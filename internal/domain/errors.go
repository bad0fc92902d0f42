package domain

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a projection is attempted on a
// profile that fails validation. It carries the full itemized result;
// nothing is retried.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile validation failed: %s", strings.Join(e.Result.Errors, "; "))
}

// ComputationError indicates a programmer or configuration fault
// detected during simulation (e.g. an inverted work span that slipped
// past validation, or a zero life-expectancy constant). It is fatal to
// the single request, never retried or absorbed.
type ComputationError struct {
	Op      string
	Message string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
