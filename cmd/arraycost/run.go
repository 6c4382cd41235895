package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/cost"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/render"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/validation"
)

// paramFlags override a loaded parameter set. Base cost and antenna factor are
// given in millions, as on the interactive controls.
type paramFlags struct {
	cmd *cobra.Command

	baseCostM  float64
	antennaM   float64
	receiver   float64
	correlator float64
	gain       float64
	alpha      float64
	standalone bool
	set        []string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	f.cmd = cmd
	d := spec.Defaults()
	fs := cmd.Flags()
	fs.Float64Var(&f.baseCostM, "base-cost", d.BaseCost/spec.Million, "fixed base cost [M$]")
	fs.Float64Var(&f.antennaM, "antenna-factor", d.AntennaCostFactor/spec.Million, "antenna cost factor f1 [M$]")
	fs.Float64Var(&f.receiver, "receiver-factor", d.ReceiverCostFactor, "receiver cost per antenna f2 [$]")
	fs.Float64Var(&f.correlator, "correlator-factor", d.CorrelatorCostFactor, "correlator cost factor f3 [$]")
	fs.Float64Var(&f.gain, "gain", d.SensitivityGain, "improvement in point-source line sensitivity")
	fs.Float64Var(&f.alpha, "alpha", d.ScalingExponent, "antenna cost-size scaling exponent")
	fs.BoolVar(&f.standalone, "standalone", false, "build a standalone array instead of integrating with the existing one")
	fs.StringArrayVar(&f.set, "set", nil, "override a parameter in base units, e.g. --set base_cost=7.5e7 (repeatable)")
}

// apply overlays the flags the user actually set onto p.
func (f *paramFlags) apply(p spec.CostParameters) (spec.CostParameters, error) {
	changed := func(name string) bool {
		return f.cmd != nil && f.cmd.Flags().Changed(name)
	}
	if changed("base-cost") {
		p.BaseCost = f.baseCostM * spec.Million
	}
	if changed("antenna-factor") {
		p.AntennaCostFactor = f.antennaM * spec.Million
	}
	if changed("receiver-factor") {
		p.ReceiverCostFactor = f.receiver
	}
	if changed("correlator-factor") {
		p.CorrelatorCostFactor = f.correlator
	}
	if changed("gain") {
		p.SensitivityGain = f.gain
	}
	if changed("alpha") {
		p.ScalingExponent = f.alpha
	}
	if changed("standalone") {
		p.IntegrateWithExisting = !f.standalone
	}

	if len(f.set) == 0 {
		return p, nil
	}
	values := make(map[string]any, len(f.set))
	for _, kv := range f.set {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return p, fmt.Errorf("--set %q: expected key=value", kv)
		}
		values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return spec.Overlay(p, values)
}

// loadParams reads the project parameter file, or the defaults when no project
// is given, and applies flag overrides.
func (a *app) loadParams(projectPath string, f *paramFlags) (spec.CostParameters, error) {
	params := spec.Defaults()
	if projectPath != "" {
		loaded, err := spec.LoadProject(projectPath)
		if err != nil {
			return params, fmt.Errorf("loading parameters: %w", err)
		}
		params = *loaded
	}
	params, err := f.apply(params)
	if err != nil {
		return params, err
	}
	a.log.WithField("regime", params.Regime()).Debugf("parameters: %+v", params)
	return params, nil
}

// evaluate validates and evaluates, printing the report when it is invalid.
func (a *app) evaluate(cmd *cobra.Command, params spec.CostParameters) (*cost.Curve, *validation.Report, error) {
	curve, report := validation.Validate(params)
	if !report.Valid {
		if a.settings.Output == "json" {
			if err := writeJSON(cmd, report); err != nil {
				return nil, report, err
			}
		} else {
			printValidationReport(cmd.OutOrStdout(), report)
		}
		return nil, report, report.Err()
	}
	a.log.WithFields(logrus.Fields{
		"regime":           curve.Regime,
		"optimal_diameter": curve.Optimum.DiameterM,
		"minimal_cost":     curve.Optimum.Cost,
	}).Info("evaluated cost curve")
	return curve, report, nil
}

func (a *app) runEvaluate(cmd *cobra.Command, projectPath string, f *paramFlags, every int) error {
	params, err := a.loadParams(projectPath, f)
	if err != nil {
		return err
	}
	curve, report, err := a.evaluate(cmd, params)
	if err != nil {
		return err
	}

	if a.settings.Output == "json" {
		return writeJSON(cmd, map[string]any{
			"parameters": params,
			"curve":      curve,
			"validation": report,
		})
	}
	printCurve(cmd.OutOrStdout(), curve, every)
	if len(report.Warnings) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		printValidationReport(cmd.OutOrStdout(), report)
	}
	return nil
}

func (a *app) runValidate(cmd *cobra.Command, projectPath string, f *paramFlags) error {
	params, err := a.loadParams(projectPath, f)
	if err != nil {
		return err
	}
	_, report := validation.Validate(params)

	if a.settings.Output == "json" {
		if err := writeJSON(cmd, report); err != nil {
			return err
		}
	} else {
		printValidationReport(cmd.OutOrStdout(), report)
	}
	return report.Err()
}

func (a *app) runPlot(cmd *cobra.Command, projectPath string, f *paramFlags, out string) error {
	params, err := a.loadParams(projectPath, f)
	if err != nil {
		return err
	}
	curve, _, err := a.evaluate(cmd, params)
	if err != nil {
		return err
	}
	if err := render.Save(out, curve); err != nil {
		return err
	}
	a.log.WithField("file", out).Info("wrote chart")
	fmt.Fprintf(cmd.OutOrStdout(), "%s\nChart written to %s\n", curve.Headline(), out)
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
