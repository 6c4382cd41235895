package spec

// CostParameters is the input to one cost-curve evaluation. All money values are in
// base currency units; presentation layers convert to and from millions.
type CostParameters struct {
	BaseCost              float64 `yaml:"base_cost" json:"base_cost" mapstructure:"base_cost"`
	AntennaCostFactor     float64 `yaml:"antenna_cost_factor" json:"antenna_cost_factor" mapstructure:"antenna_cost_factor"`
	ReceiverCostFactor    float64 `yaml:"receiver_cost_factor" json:"receiver_cost_factor" mapstructure:"receiver_cost_factor"`
	CorrelatorCostFactor  float64 `yaml:"correlator_cost_factor" json:"correlator_cost_factor" mapstructure:"correlator_cost_factor"`
	SensitivityGain       float64 `yaml:"sensitivity_gain" json:"sensitivity_gain" mapstructure:"sensitivity_gain"`
	ScalingExponent       float64 `yaml:"scaling_exponent" json:"scaling_exponent" mapstructure:"scaling_exponent"`
	IntegrateWithExisting bool    `yaml:"integrate_with_existing" json:"integrate_with_existing" mapstructure:"integrate_with_existing"`
}

// Regime selects how the new antennas relate to the existing array.
type Regime string

const (
	// RegimeIntegrated adds the new antennas to the existing array.
	RegimeIntegrated Regime = "integrated"
	// RegimeStandalone builds a new array that meets the target on its own.
	RegimeStandalone Regime = "standalone"
)

// Regime returns the growth regime selected by IntegrateWithExisting.
func (p CostParameters) Regime() Regime {
	if p.IntegrateWithExisting {
		return RegimeIntegrated
	}
	return RegimeStandalone
}

// Defaults returns the reference parameter set.
func Defaults() CostParameters {
	return CostParameters{
		BaseCost:              50e6,
		AntennaCostFactor:     5e6,
		ReceiverCostFactor:    2.5e5,
		CorrelatorCostFactor:  6000,
		SensitivityGain:       5,
		ScalingExponent:       2.7,
		IntegrateWithExisting: true,
	}
}
