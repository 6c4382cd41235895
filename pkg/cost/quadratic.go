package cost

import (
	"errors"
	"math"
)

var (
	errNegativeDiscriminant = errors.New("negative discriminant")
	errDegenerate           = errors.New("degenerate quadratic")
)

// positiveRoot returns the larger root (-b + sqrt(b²-4ac)) / 2a of a·x² + b·x + c = 0.
// A zero discriminant yields the repeated root -b/2a.
func positiveRoot(a, b, c float64) (float64, error) {
	if a == 0 {
		return 0, errDegenerate
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, errNegativeDiscriminant
	}
	if disc == 0 {
		return -b / (2 * a), nil
	}
	return (-b + math.Sqrt(disc)) / (2 * a), nil
}
