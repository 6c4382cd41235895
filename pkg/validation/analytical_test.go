package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/cost"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

func TestValidateDefaults(t *testing.T) {
	curve, r := Validate(spec.Defaults())
	if !r.Valid {
		t.Fatalf("expected valid report, got %v", r.Errors)
	}
	if curve == nil {
		t.Fatal("expected a curve for a valid parameter set")
	}
	if len(r.Info) != 1 {
		t.Fatalf("expected 1 info, got %d", len(r.Info))
	}
	if !strings.HasPrefix(r.Info[0].Message, "Optimum D = ") {
		t.Errorf("unexpected info message %q", r.Info[0].Message)
	}
}

func TestValidateSchemaFailureSkipsEvaluation(t *testing.T) {
	p := spec.Defaults()
	p.ReceiverCostFactor = 0
	curve, r := Validate(p)
	if curve != nil {
		t.Error("expected no curve when schema validation fails")
	}
	for _, e := range r.Errors {
		if e.Level == LevelAnalytical {
			t.Errorf("analytical validation should not run, got %v", e)
		}
	}
}

func TestValidateDomainError(t *testing.T) {
	p := spec.Defaults()
	p.SensitivityGain = 1
	curve, r := Validate(p)
	if curve != nil {
		t.Error("expected no curve for an unreachable target")
	}
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	e := r.Errors[0]
	if e.Level != LevelAnalytical || e.Parameter != "sensitivity_gain" {
		t.Errorf("unexpected error %+v", e)
	}
	if len(e.Diameters) != cost.GridPoints {
		t.Errorf("diameters = %d, want %d", len(e.Diameters), cost.GridPoints)
	}
	if len(e.Suggestions) == 0 {
		t.Error("expected suggestions")
	}
}

func TestValidateCurveOtherError(t *testing.T) {
	r := ValidateCurve(nil, errors.New("boom"))
	if r.Valid || len(r.Errors) != 1 || r.Errors[0].Message != "boom" {
		t.Errorf("unexpected report %+v", r)
	}
}

func TestValidateCurveEdgeOptimum(t *testing.T) {
	curve, err := cost.Evaluate(spec.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	curve.Optimum.Index = 0
	curve.Optimum.DiameterM = curve.Diameters[0]
	r := ValidateCurve(curve, nil)
	if !r.Valid {
		t.Error("edge optimum should only warn")
	}
	if len(r.Warnings) != 1 || r.Warnings[0].Parameter != "optimal_diameter" {
		t.Errorf("expected optimal_diameter warning, got %v", r.Warnings)
	}
}
