package cost

import (
	"fmt"
	"strings"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
)

// InvalidParameterError reports an input that is out of its allowed domain.
type InvalidParameterError struct {
	Field      string
	Value      float64
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s = %v: must be %s", e.Field, e.Value, e.Constraint)
}

// DomainError reports sampled diameters at which no real, non-negative antenna
// count meets the requested sensitivity gain.
type DomainError struct {
	Regime    spec.Regime
	Gain      float64
	Diameters []float64
	Reason    string
}

func (e *DomainError) Error() string {
	ds := make([]string, 0, len(e.Diameters))
	for i, d := range e.Diameters {
		if i == 5 {
			ds = append(ds, fmt.Sprintf("... (%d more)", len(e.Diameters)-5))
			break
		}
		ds = append(ds, fmt.Sprintf("%.2f", d))
	}
	return fmt.Sprintf("%s regime: no antenna count reaches sensitivity gain %v at %d diameter(s) [%s m]: %s",
		e.Regime, e.Gain, len(e.Diameters), strings.Join(ds, ", "), e.Reason)
}
