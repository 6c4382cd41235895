package validation

import (
	"math"
	"testing"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

func TestValidateParametersValid(t *testing.T) {
	r := ValidateParameters(spec.Defaults())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("defaults should sit inside every range, got %v", r.Warnings)
	}
}

func TestValidateParametersBaseCostZero(t *testing.T) {
	p := spec.Defaults()
	p.BaseCost = 0
	r := ValidateParameters(p)
	if r.Valid {
		t.Error("expected invalid report for zero base cost")
	}
	found := false
	for _, e := range r.Errors {
		if e.Parameter == "base_cost" {
			found = true
			if e.Level != LevelSchema {
				t.Errorf("level = %q, want %q", e.Level, LevelSchema)
			}
			if e.ActualValue != 0.0 {
				t.Errorf("actual value = %v, want 0", e.ActualValue)
			}
		}
	}
	if !found {
		t.Error("expected error on base_cost")
	}
}

func TestValidateParametersMultipleErrors(t *testing.T) {
	p := spec.Defaults()
	p.SensitivityGain = 0.5
	p.ScalingExponent = math.NaN()
	p.CorrelatorCostFactor = -6000
	r := ValidateParameters(p)
	if len(r.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(r.Errors), r.Errors)
	}
	want := map[string]bool{"sensitivity_gain": true, "scaling_exponent": true, "correlator_cost_factor": true}
	for _, e := range r.Errors {
		if !want[e.Parameter] {
			t.Errorf("unexpected error on %q", e.Parameter)
		}
	}
}

func TestValidateParametersOutOfRangeWarns(t *testing.T) {
	p := spec.Defaults()
	p.SensitivityGain = 20
	p.BaseCost = 1e9
	r := ValidateParameters(p)
	if !r.Valid {
		t.Errorf("out-of-range values should not invalidate, got %v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(r.Warnings), r.Warnings)
	}
	for _, w := range r.Warnings {
		if w.Parameter == "base_cost" && w.Expected != "5 to 500 M$" {
			t.Errorf("base_cost expected = %q, want %q", w.Expected, "5 to 500 M$")
		}
		if w.Parameter == "sensitivity_gain" && w.Expected != "1 to 10" {
			t.Errorf("sensitivity_gain expected = %q, want %q", w.Expected, "1 to 10")
		}
	}
}
