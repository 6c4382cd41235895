package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/cost"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

// ValidateParameters performs Level 1 (schema) validation on a parameter set.
// It checks every field before any computation. Values outside the interactive
// control ranges are reported as warnings only.
func ValidateParameters(p spec.CostParameters) *Report {
	r := NewReport()

	validateDomains(p, r)
	validateRanges(p, spec.DefaultRanges(), r)

	return r
}

func validateDomains(p spec.CostParameters, r *Report) {
	err := cost.CheckParameters(p)
	if err == nil {
		return
	}
	for _, e := range unwrapAll(err) {
		var ipe *cost.InvalidParameterError
		if !errors.As(e, &ipe) {
			r.AddError(Result{Level: LevelSchema, Message: e.Error()})
			continue
		}
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be %s", ipe.Field, ipe.Constraint),
			Parameter:   ipe.Field,
			ActualValue: ipe.Value,
			Expected:    ipe.Constraint,
		})
	}
}

func validateRanges(p spec.CostParameters, ranges spec.Ranges, r *Report) {
	checks := []struct {
		field string
		value float64
		rng   spec.Range
	}{
		{"base_cost", p.BaseCost / spec.Million, ranges.BaseCost},
		{"antenna_cost_factor", p.AntennaCostFactor / spec.Million, ranges.AntennaCostFactor},
		{"receiver_cost_factor", p.ReceiverCostFactor, ranges.ReceiverCostFactor},
		{"correlator_cost_factor", p.CorrelatorCostFactor, ranges.CorrelatorCostFactor},
		{"sensitivity_gain", p.SensitivityGain, ranges.SensitivityGain},
		{"scaling_exponent", p.ScalingExponent, ranges.ScalingExponent},
	}
	for _, c := range checks {
		if c.value >= c.rng.Min && c.value <= c.rng.Max {
			continue
		}
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s is outside the explored range", c.field),
			Parameter:   c.field,
			ActualValue: c.value,
			Expected:    strings.TrimSpace(fmt.Sprintf("%g to %g %s", c.rng.Min, c.rng.Max, c.rng.Unit)),
		})
	}
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
