package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

var errNegativeCount = errors.New("negative antenna count")

// ExistingArray describes the array that the sensitivity gain is measured against.
type ExistingArray struct {
	DiameterM float64 `json:"diameter_m"`
	Antennas  int     `json:"antennas"`
}

// ReferenceArray is the 50 x 12 m array currently in operation.
var ReferenceArray = ExistingArray{DiameterM: ExistingDiameterM, Antennas: ExistingAntennas}

// area returns the geometric collecting area of one dish.
func area(d float64) float64 {
	return math.Pi * d * d / 4
}

// baselines returns n·(n-1), twice the number of distinct antenna pairs.
func (e ExistingArray) baselines() float64 {
	n := float64(e.Antennas)
	return n * (n - 1)
}

// Growth is one way of growing the array to reach a sensitivity gain.
type Growth interface {
	Regime() spec.Regime
	// AntennaCount returns the number of new antennas of diameter d needed to
	// reach gain.
	AntennaCount(d, gain float64) (float64, error)
	// CorrelatorInputs returns the number of antennas the correlator must serve
	// when n new antennas are built.
	CorrelatorInputs(n float64) float64
}

// GrowthFor returns the growth model for the regime.
func GrowthFor(r spec.Regime, existing ExistingArray) (Growth, error) {
	switch r {
	case spec.RegimeIntegrated:
		return Integrated{Existing: existing, Efficiency: 1 - EfficiencyPenalty}, nil
	case spec.RegimeStandalone:
		return Standalone{Existing: existing, Efficiency: 1 - EfficiencyPenalty}, nil
	default:
		return nil, fmt.Errorf("unknown regime %q", r)
	}
}

// Integrated adds new antennas to the existing array. Sensitivity squared of the
// combined array scales with its cross-baselines weighted by collecting area:
//
//	A_new²·n² + (2·n0·A_old·A_new − A_new²)·n + (1 − g²·η²)·n0(n0−1)·A_old² = 0
type Integrated struct {
	Existing   ExistingArray
	Efficiency float64
}

func (Integrated) Regime() spec.Regime { return spec.RegimeIntegrated }

func (g Integrated) AntennaCount(d, gain float64) (float64, error) {
	aNew := area(d)
	aOld := area(g.Existing.DiameterM)
	n0 := float64(g.Existing.Antennas)

	a := aNew * aNew
	b := 2*n0*aOld*aNew - aNew*aNew
	c := (1 - gain*gain*g.Efficiency*g.Efficiency) * g.Existing.baselines() * aOld * aOld

	n, err := positiveRoot(a, b, c)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return n, errNegativeCount
	}
	return n, nil
}

// CorrelatorInputs counts the existing antennas as well as the new ones.
func (g Integrated) CorrelatorInputs(n float64) float64 {
	return n + float64(g.Existing.Antennas)
}

// Standalone builds a new array that reaches the target without the existing one.
// Its pairwise-baseline count must match the area-scaled target:
//
//	n² − n − 2·g²·(D0²/D²)²·η²·n0(n0−1)/2 = 0
type Standalone struct {
	Existing   ExistingArray
	Efficiency float64
}

func (Standalone) Regime() spec.Regime { return spec.RegimeStandalone }

func (g Standalone) AntennaCount(d, gain float64) (float64, error) {
	ratio := g.Existing.DiameterM * g.Existing.DiameterM / (d * d)
	c := 2 * gain * gain * ratio * ratio * g.Efficiency * g.Efficiency * (g.Existing.baselines() / 2)

	n, err := positiveRoot(1, -1, -c)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return n, errNegativeCount
	}
	return n, nil
}

// CorrelatorInputs counts only the new antennas.
func (Standalone) CorrelatorInputs(n float64) float64 {
	return n
}
