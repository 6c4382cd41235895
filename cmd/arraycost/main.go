package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jdenbrok/ALMA2040-Calculations/internal/config"
	"github.com/jdenbrok/ALMA2040-Calculations/internal/server"
)

// app carries the runtime settings shared by every subcommand.
type app struct {
	v        *viper.Viper
	settings config.Settings
	log      *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:          "arraycost",
		Short:        "Antenna array construction cost model",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.StringP("output", "o", "table", "output format (table, json)")
	mustBind(a.v, "log_level", pf.Lookup("log-level"))
	mustBind(a.v, "log_format", pf.Lookup("log-format"))
	mustBind(a.v, "output", pf.Lookup("output"))

	rootCmd.AddCommand(a.evaluateCmd())
	rootCmd.AddCommand(a.validateCmd())
	rootCmd.AddCommand(a.plotCmd())
	rootCmd.AddCommand(a.serveCmd())

	return rootCmd
}

func (a *app) init() error {
	s, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := s.Logger()
	if err != nil {
		return err
	}
	a.settings = s
	a.log = log
	return nil
}

func (a *app) evaluateCmd() *cobra.Command {
	var pf paramFlags
	var every int

	cmd := &cobra.Command{
		Use:   "evaluate [project-path]",
		Short: "Evaluate the cost curve and report the optimum diameter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEvaluate(cmd, projectArg(args), &pf, every)
		},
	}

	pf.register(cmd)
	cmd.Flags().IntVar(&every, "every", 20, "print every Nth sampled diameter in table output")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	var pf paramFlags

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a parameter set without printing the curve",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, projectArg(args), &pf)
		},
	}

	pf.register(cmd)
	return cmd
}

func (a *app) plotCmd() *cobra.Command {
	var pf paramFlags
	var out string

	cmd := &cobra.Command{
		Use:   "plot [project-path]",
		Short: "Render the cost-vs-diameter chart to an image file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlot(cmd, projectArg(args), &pf, out)
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVarP(&out, "file", "f", "cost.svg", "chart file; format follows the extension (svg, png, pdf)")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var pf paramFlags

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the interactive cost explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := a.loadParams(projectArg(args), &pf)
			if err != nil {
				return err
			}
			srv := server.New(params, a.settings.Port, a.log)
			return srv.Start()
		},
	}

	pf.register(cmd)
	cmd.Flags().IntP("port", "p", 3000, "HTTP server port")
	mustBind(a.v, "port", cmd.Flags().Lookup("port"))
	return cmd
}

// mustBind binds a settings key to a flag. A failure means the flag was never
// registered, which is a programming error.
func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding %s: %v", key, err))
	}
}

func projectArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
