package spec

import "math"

// Million converts between base currency units and the millions shown on controls.
const Million = 1_000_000.0

// Range bounds one adjustable parameter as presented on an interactive control.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
	Unit string  `json:"unit"`
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Ranges holds the control range for every numeric parameter.
type Ranges struct {
	BaseCost             Range `json:"base_cost"`
	AntennaCostFactor    Range `json:"antenna_cost_factor"`
	ReceiverCostFactor   Range `json:"receiver_cost_factor"`
	CorrelatorCostFactor Range `json:"correlator_cost_factor"`
	SensitivityGain      Range `json:"sensitivity_gain"`
	ScalingExponent      Range `json:"scaling_exponent"`
}

// DefaultRanges spans one decade either side of the defaults for the cost factors.
// Base cost and antenna factor are expressed in millions.
func DefaultRanges() Ranges {
	d := Defaults()
	return Ranges{
		BaseCost:             Range{Min: d.BaseCost / 10 / Million, Max: d.BaseCost * 10 / Million, Step: 0.5, Unit: "M$"},
		AntennaCostFactor:    Range{Min: d.AntennaCostFactor / 10 / Million, Max: d.AntennaCostFactor * 10 / Million, Step: 0.1, Unit: "M$"},
		ReceiverCostFactor:   Range{Min: d.ReceiverCostFactor / 10, Max: d.ReceiverCostFactor * 10, Step: 1e4, Unit: "$"},
		CorrelatorCostFactor: Range{Min: d.CorrelatorCostFactor / 10, Max: d.CorrelatorCostFactor * 10, Step: 500, Unit: "$"},
		SensitivityGain:      Range{Min: 1, Max: 10, Step: 1},
		ScalingExponent:      Range{Min: 0, Max: 4, Step: 0.1},
	}
}

// Clamp returns p with every numeric field limited to its control range.
// In-range values are returned unchanged.
func (r Ranges) Clamp(p CostParameters) CostParameters {
	p.BaseCost = clampScaled(r.BaseCost, p.BaseCost, Million)
	p.AntennaCostFactor = clampScaled(r.AntennaCostFactor, p.AntennaCostFactor, Million)
	p.ReceiverCostFactor = r.ReceiverCostFactor.Clamp(p.ReceiverCostFactor)
	p.CorrelatorCostFactor = r.CorrelatorCostFactor.Clamp(p.CorrelatorCostFactor)
	p.SensitivityGain = r.SensitivityGain.Clamp(p.SensitivityGain)
	p.ScalingExponent = r.ScalingExponent.Clamp(p.ScalingExponent)
	return p
}

// clampScaled clamps v, expressed in base units, to a range given in units of scale.
func clampScaled(r Range, v, scale float64) float64 {
	switch {
	case v < r.Min*scale:
		return r.Min * scale
	case v > r.Max*scale:
		return r.Max * scale
	default:
		return v
	}
}
