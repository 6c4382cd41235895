package cost

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

// Breakdown itemizes the construction cost at one sampled diameter.
type Breakdown struct {
	DiameterM    float64 `json:"diameter_m"`
	AntennaCount float64 `json:"antenna_count"`
	Base         float64 `json:"base"`
	Antenna      float64 `json:"antenna"`
	Receiver     float64 `json:"receiver"`
	Correlator   float64 `json:"correlator"`
	Total        float64 `json:"total"`
}

// Optimum is the sampled diameter with the lowest total cost.
type Optimum struct {
	Index       int     `json:"index"`
	DiameterM   float64 `json:"optimal_diameter"`
	Cost        float64 `json:"minimal_cost"`
	NewAntennas int     `json:"optimal_new_antenna_count"`
}

// Curve is the construction cost sampled over the diameter grid.
type Curve struct {
	Regime         spec.Regime `json:"regime"`
	BaseCost       float64     `json:"base_cost"`
	Diameters      []float64   `json:"diameters"`
	AntennaCount   []float64   `json:"antenna_count"`
	AntennaCost    []float64   `json:"antenna_cost"`
	ReceiverCost   []float64   `json:"receiver_cost"`
	CorrelatorCost []float64   `json:"correlator_cost"`
	TotalCost      []float64   `json:"total_cost"`
	Optimum        Optimum     `json:"optimum"`
}

// At returns the itemized cost at sample i.
func (c *Curve) At(i int) Breakdown {
	return Breakdown{
		DiameterM:    c.Diameters[i],
		AntennaCount: c.AntennaCount[i],
		Base:         c.BaseCost,
		Antenna:      c.AntennaCost[i],
		Receiver:     c.ReceiverCost[i],
		Correlator:   c.CorrelatorCost[i],
		Total:        c.TotalCost[i],
	}
}

// Len returns the number of sampled diameters.
func (c *Curve) Len() int {
	return len(c.Diameters)
}

// Headline summarizes the optimum in one line, with the cost in billions.
func (c *Curve) Headline() string {
	opt := c.Optimum
	return fmt.Sprintf("Optimum D = %.2f m, Cost = %.2f B$, #New Antennas = %d",
		opt.DiameterM, opt.Cost/1e9, opt.NewAntennas)
}

// Grid returns a fresh copy of the diameter sampling grid.
func Grid() []float64 {
	return floats.Span(make([]float64, GridPoints), MinDiameterM, MaxDiameterM)
}

// Evaluate computes the cost curve for p against the reference array.
func Evaluate(p spec.CostParameters) (*Curve, error) {
	return EvaluateAgainst(p, ReferenceArray)
}

// EvaluateAgainst computes the cost curve for p against an arbitrary existing array.
//
// It returns an error wrapping *InvalidParameterError values when p is out of
// range, and a *DomainError when any sampled diameter has no real, non-negative
// antenna count.
func EvaluateAgainst(p spec.CostParameters, existing ExistingArray) (*Curve, error) {
	if err := CheckParameters(p); err != nil {
		return nil, err
	}
	if !finite(existing.DiameterM) || existing.DiameterM <= 0 || existing.Antennas < 2 {
		return nil, &InvalidParameterError{Field: "existing_array", Value: existing.DiameterM, Constraint: "a positive diameter with at least 2 antennas"}
	}
	growth, err := GrowthFor(p.Regime(), existing)
	if err != nil {
		return nil, err
	}

	diameters := Grid()
	n := make([]float64, len(diameters))

	var bad []float64
	var reasons []string
	for i, d := range diameters {
		count, err := growth.AntennaCount(d, p.SensitivityGain)
		if err != nil {
			bad = append(bad, d)
			if !slices.Contains(reasons, err.Error()) {
				reasons = append(reasons, err.Error())
			}
			continue
		}
		n[i] = count
	}
	if len(bad) > 0 {
		return nil, &DomainError{
			Regime:    growth.Regime(),
			Gain:      p.SensitivityGain,
			Diameters: bad,
			Reason:    strings.Join(reasons, "; "),
		}
	}

	curve := &Curve{
		Regime:         growth.Regime(),
		BaseCost:       p.BaseCost,
		Diameters:      diameters,
		AntennaCount:   n,
		AntennaCost:    make([]float64, len(diameters)),
		ReceiverCost:   make([]float64, len(diameters)),
		CorrelatorCost: make([]float64, len(diameters)),
		TotalCost:      make([]float64, len(diameters)),
	}
	for i, d := range diameters {
		inputs := growth.CorrelatorInputs(n[i])
		curve.AntennaCost[i] = p.AntennaCostFactor * n[i] * math.Pow(d/existing.DiameterM, p.ScalingExponent)
		curve.ReceiverCost[i] = p.ReceiverCostFactor * n[i]
		curve.CorrelatorCost[i] = p.CorrelatorCostFactor * inputs * inputs
		curve.TotalCost[i] = p.BaseCost + curve.AntennaCost[i] + curve.ReceiverCost[i] + curve.CorrelatorCost[i]
	}

	// MinIdx returns the first index on ties, which is the smallest diameter.
	idx := floats.MinIdx(curve.TotalCost)
	curve.Optimum = Optimum{
		Index:       idx,
		DiameterM:   diameters[idx],
		Cost:        curve.TotalCost[idx],
		NewAntennas: int(math.RoundToEven(n[idx])),
	}
	return curve, nil
}

// CheckParameters validates p and returns every violation joined into one error.
func CheckParameters(p spec.CostParameters) error {
	var errs []error
	positive := []struct {
		field string
		value float64
	}{
		{"base_cost", p.BaseCost},
		{"antenna_cost_factor", p.AntennaCostFactor},
		{"receiver_cost_factor", p.ReceiverCostFactor},
		{"correlator_cost_factor", p.CorrelatorCostFactor},
	}
	for _, f := range positive {
		if !finite(f.value) || f.value <= 0 {
			errs = append(errs, &InvalidParameterError{Field: f.field, Value: f.value, Constraint: "finite and > 0"})
		}
	}
	if !finite(p.SensitivityGain) || p.SensitivityGain < 1 {
		errs = append(errs, &InvalidParameterError{Field: "sensitivity_gain", Value: p.SensitivityGain, Constraint: "finite and >= 1"})
	}
	if !finite(p.ScalingExponent) || p.ScalingExponent < 0 {
		errs = append(errs, &InvalidParameterError{Field: "scaling_exponent", Value: p.ScalingExponent, Constraint: "finite and >= 0"})
	}
	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
