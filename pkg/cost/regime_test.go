package cost

import (
	"errors"
	"math"
	"testing"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

func TestPositiveRoot(t *testing.T) {
	// x² - 5x + 6 = (x-2)(x-3)
	x, err := positiveRoot(1, -5, 6)
	if err != nil {
		t.Fatalf("positiveRoot failed: %v", err)
	}
	if math.Abs(x-3) > 1e-12 {
		t.Errorf("root = %v, want 3", x)
	}
}

func TestPositiveRootRepeated(t *testing.T) {
	// x² - 4x + 4 = (x-2)², discriminant exactly zero
	x, err := positiveRoot(1, -4, 4)
	if err != nil {
		t.Fatalf("zero discriminant should not fail: %v", err)
	}
	if x != 2 {
		t.Errorf("root = %v, want 2", x)
	}
}

func TestPositiveRootNegativeDiscriminant(t *testing.T) {
	_, err := positiveRoot(1, 0, 1)
	if !errors.Is(err, errNegativeDiscriminant) {
		t.Errorf("err = %v, want %v", err, errNegativeDiscriminant)
	}
	_, err = positiveRoot(0, 1, 1)
	if !errors.Is(err, errDegenerate) {
		t.Errorf("err = %v, want %v", err, errDegenerate)
	}
}

func TestGrowthFor(t *testing.T) {
	g, err := GrowthFor(spec.RegimeIntegrated, ReferenceArray)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(Integrated); !ok {
		t.Errorf("integrated regime gave %T", g)
	}
	g, err = GrowthFor(spec.RegimeStandalone, ReferenceArray)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(Standalone); !ok {
		t.Errorf("standalone regime gave %T", g)
	}
	if _, err := GrowthFor("hybrid", ReferenceArray); err == nil {
		t.Error("unknown regime should fail")
	}
}

func TestIntegratedAntennaCount(t *testing.T) {
	g := Integrated{Existing: ReferenceArray, Efficiency: 1 - EfficiencyPenalty}
	for _, d := range []float64{6, 12, 25, 50} {
		n, err := g.AntennaCount(d, 5)
		if err != nil {
			t.Fatalf("D=%v: %v", d, err)
		}
		// Substitute back into the quadratic.
		aNew := area(d)
		aOld := area(ExistingDiameterM)
		a := aNew * aNew
		b := 2*ExistingAntennas*aOld*aNew - aNew*aNew
		c := (1 - 25*0.49) * 50 * 49 * aOld * aOld
		residual := (a*n*n + b*n + c) / math.Abs(c)
		if math.Abs(residual) > 1e-9 {
			t.Errorf("D=%v: n=%v leaves relative residual %v", d, n, residual)
		}
	}
}

func TestIntegratedFewerAntennasWhenLarger(t *testing.T) {
	g := Integrated{Existing: ReferenceArray, Efficiency: 1 - EfficiencyPenalty}
	small, _ := g.AntennaCount(6, 5)
	large, _ := g.AntennaCount(30, 5)
	if large >= small {
		t.Errorf("30 m dishes need %v antennas, 6 m dishes need %v; expected fewer large ones", large, small)
	}
}

func TestIntegratedUnitGainIsNegative(t *testing.T) {
	g := Integrated{Existing: ReferenceArray, Efficiency: 1 - EfficiencyPenalty}
	n, err := g.AntennaCount(ExistingDiameterM, 1)
	if !errors.Is(err, errNegativeCount) {
		t.Fatalf("err = %v, want %v", err, errNegativeCount)
	}
	if n >= 0 {
		t.Errorf("n = %v, expected negative", n)
	}
}

func TestStandaloneAntennaCount(t *testing.T) {
	g := Standalone{Existing: ReferenceArray, Efficiency: 1 - EfficiencyPenalty}
	// At the existing diameter and unit gain the pair count is set by the
	// efficiency-scaled baselines of the existing array alone.
	n, err := g.AntennaCount(ExistingDiameterM, 1)
	if err != nil {
		t.Fatal(err)
	}
	c := 0.49 * 50 * 49
	if math.Abs(n*(n-1)-c) > 1e-9*c {
		t.Errorf("n(n-1) = %v, want %v", n*(n-1), c)
	}
	if math.Abs(n-35.1518) > 1e-3 {
		t.Errorf("n = %v, want ~35.15", n)
	}
}

func TestStandaloneScalesWithArea(t *testing.T) {
	g := Standalone{Existing: ReferenceArray, Efficiency: 1 - EfficiencyPenalty}
	n6, _ := g.AntennaCount(6, 5)
	n24, _ := g.AntennaCount(24, 5)
	// Pair count scales as (D0/D)^4, so antenna count roughly as (D0/D)^2.
	ratio := n6 / n24
	if math.Abs(ratio-16) > 0.5 {
		t.Errorf("n(6)/n(24) = %v, want ~16", ratio)
	}
}

func TestCorrelatorInputs(t *testing.T) {
	i := Integrated{Existing: ReferenceArray}
	if got := i.CorrelatorInputs(10); got != 60 {
		t.Errorf("integrated inputs = %v, want 60", got)
	}
	s := Standalone{Existing: ReferenceArray}
	if got := s.CorrelatorInputs(10); got != 10 {
		t.Errorf("standalone inputs = %v, want 10", got)
	}
}

func TestDomainErrorMessage(t *testing.T) {
	e := &DomainError{
		Regime:    spec.RegimeIntegrated,
		Gain:      1,
		Diameters: []float64{6, 7, 8, 9, 10, 11, 12},
		Reason:    "negative antenna count",
	}
	want := "integrated regime: no antenna count reaches sensitivity gain 1 at 7 diameter(s) " +
		"[6.00, 7.00, 8.00, 9.00, 10.00, ... (2 more) m]: negative antenna count"
	if e.Error() != want {
		t.Errorf("message = %q\nwant      %q", e.Error(), want)
	}
}
