package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Level indicates which validation stage produced the result.
type Level string

const (
	LevelSchema     Level = "schema"
	LevelAnalytical Level = "analytical"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding about a parameter set or its curve.
type Result struct {
	Level       Level     `json:"level"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	Parameter   string    `json:"parameter,omitempty"`
	ActualValue any       `json:"actual_value,omitempty"`
	Expected    string    `json:"expected,omitempty"`
	Diameters   []float64 `json:"diameters,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// Report collects the findings for one parameter set, grouped by severity.
// Valid is false as soon as one error is recorded.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	return &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
}

// AddError records an error and marks the report invalid.
func (r *Report) AddError(result Result) { r.add(SeverityError, result) }

// AddWarning records a warning.
func (r *Report) AddWarning(result Result) { r.add(SeverityWarning, result) }

// AddInfo records an informational note.
func (r *Report) AddInfo(result Result) { r.add(SeverityInfo, result) }

func (r *Report) add(sev Severity, result Result) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.summarize()
}

// Merge appends the findings of other, in severity order. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	for _, group := range [][]Result{other.Errors, other.Warnings, other.Info} {
		for _, res := range group {
			r.add(res.Severity, res)
		}
	}
	r.Valid = r.Valid && other.Valid
}

// Err returns nil for a valid report, and otherwise an error carrying the
// message of every recorded error.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, res := range r.Errors {
		errs = append(errs, errors.New(res.Message))
	}
	return fmt.Errorf("parameter set is invalid (%s): %w", r.Summary, errors.Join(errs...))
}

func (r *Report) summarize() {
	r.Summary = strings.Join([]string{
		plural(len(r.Errors), "error"),
		plural(len(r.Warnings), "warning"),
		fmt.Sprintf("%d info", len(r.Info)),
	}, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
