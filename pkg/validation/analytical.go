package validation

import (
	"errors"
	"fmt"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/cost"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

// Validate runs schema validation and, when it passes, evaluates the cost curve
// for analytical validation. The curve is nil whenever the report is invalid.
func Validate(p spec.CostParameters) (*cost.Curve, *Report) {
	r := ValidateParameters(p)
	if !r.Valid {
		return nil, r
	}
	curve, err := cost.Evaluate(p)
	analytical := ValidateCurve(curve, err)
	r.Merge(analytical)
	if !r.Valid {
		return nil, r
	}
	return curve, r
}

// ValidateCurve performs Level 2 (analytical) validation on the outcome of an
// evaluation.
func ValidateCurve(curve *cost.Curve, err error) *Report {
	r := NewReport()

	if err != nil {
		addEvaluationError(err, r)
		return r
	}

	opt := curve.Optimum
	if opt.Index == 0 || opt.Index == curve.Len()-1 {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     "cost minimum lies on the edge of the sampled diameter range",
			Parameter:   "optimal_diameter",
			ActualValue: opt.DiameterM,
			Expected:    fmt.Sprintf("strictly between %g and %g m", cost.MinDiameterM, cost.MaxDiameterM),
			Suggestions: []string{"The true optimum may lie outside the sampled range; adjust the cost factors or scaling exponent"},
		})
	}

	r.AddInfo(Result{
		Level:   LevelAnalytical,
		Message: curve.Headline(),
	})
	return r
}

func addEvaluationError(err error, r *Report) {
	var de *cost.DomainError
	if errors.As(err, &de) {
		r.AddError(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("no real antenna count reaches the requested sensitivity gain at %d sampled diameter(s)", len(de.Diameters)),
			Parameter:   "sensitivity_gain",
			ActualValue: de.Gain,
			Expected:    de.Reason,
			Diameters:   de.Diameters,
			Suggestions: []string{
				"Raise sensitivity_gain until the new antennas add sensitivity beyond the existing array",
				"Switch integrate_with_existing to build a standalone array",
			},
		})
		return
	}
	r.AddError(Result{Level: LevelAnalytical, Message: err.Error()})
}
