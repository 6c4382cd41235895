package cost

// Existing array the new antennas are measured against.
const (
	ExistingDiameterM = 12.0 // m
	ExistingAntennas  = 50   // antennas
)

// EfficiencyPenalty is the fractional sensitivity lost by the new antennas
// relative to the existing ones.
const EfficiencyPenalty = 0.3

// Diameter sampling grid.
const (
	MinDiameterM = 6.0  // m
	MaxDiameterM = 50.0 // m
	GridPoints   = 300
)
