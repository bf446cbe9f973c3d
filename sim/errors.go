package sim

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// FieldViolation names one configuration field that failed validation.
type FieldViolation struct {
	Field  string `json:"field"`  // wire name, e.g. "vmCount"
	Value  int    `json:"value"`
	Reason string `json:"reason"` // "must be > 0" or "must be >= 0"
}

func (v FieldViolation) Error() string {
	return fmt.Sprintf("%s %s, got %d", v.Field, v.Reason, v.Value)
}

// ConfigurationError reports that a SimulationConfig cannot be estimated.
// It is returned before any stage runs; no partial result accompanies it.
type ConfigurationError struct {
	Violations []FieldViolation
	errs       *multierror.Error
}

func (e *ConfigurationError) Error() string {
	return "invalid simulation config: " + e.errs.Error()
}

// Unwrap exposes the aggregated violations to errors.Is / errors.As.
func (e *ConfigurationError) Unwrap() error {
	return e.errs
}

// HasField reports whether the named field is among the violations.
func (e *ConfigurationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// joinViolations renders violations on one line.
func joinViolations(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// validator accumulates field violations.
type validator struct {
	violations []FieldViolation
	errs       *multierror.Error
}

func (v *validator) add(field string, value int, reason string) {
	fv := FieldViolation{Field: field, Value: value, Reason: reason}
	v.violations = append(v.violations, fv)
	v.errs = multierror.Append(v.errs, fv)
}

func (v *validator) nonNegative(field string, value int) {
	if value < 0 {
		v.add(field, value, "must be >= 0")
	}
}

func (v *validator) positive(field string, value int) {
	if value <= 0 {
		v.add(field, value, "must be > 0")
	}
}

func (v *validator) err() error {
	if v.errs == nil {
		return nil
	}
	v.errs.ErrorFormat = joinViolations
	return &ConfigurationError{Violations: v.violations, errs: v.errs}
}
