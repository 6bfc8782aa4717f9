package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kroening-labs/mcheck/internal/config"
	"github.com/kroening-labs/mcheck/internal/decision"
	"github.com/kroening-labs/mcheck/internal/induction"
	"github.com/kroening-labs/mcheck/internal/report"
)

var log = logrus.New()

var cfg config.Config

// rootCmd represents the mcheck binary: there is exactly one command,
// no subcommands, using a package-level-var-and-init registration
// style collapsed to a single entry point.
var rootCmd = &cobra.Command{
	Use:   "mcheck --property-file FILE",
	Short: "k-induction model checker core",
	Long:  "Runs the k-induction driver over a transition system and property set described by a JSON property file.",
	RunE:  run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&cfg.Bound, "bound", "k", 0, "k-induction bound")
	rootCmd.Flags().StringVar(&cfg.PropertyFile, "property-file", "", "path to the JSON property file")
	rootCmd.Flags().BoolVar(&cfg.JSON, "json", false, "emit the result set as JSON instead of text")
	rootCmd.Flags().StringVar(&cfg.Solver, "solver", "fake", "decision procedure backend: fake or z3")
	_ = rootCmd.MarkFlagRequired("property-file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg.BoundSet = cmd.Flags().Changed("bound")

	k, defaulted := cfg.EffectiveBound()
	if defaulted {
		log.Warn("--bound not set: using 1-induction")
	}

	sys, props, err := loadProblem(cfg.PropertyFile)
	if err != nil {
		return err
	}

	var factory decision.Factory
	switch cfg.Solver {
	case "z3":
		factory = decision.NewZ3Factory()
	default:
		factory = decision.NewFakeFactory(sys.Builder)
	}

	result, err := induction.Run(sys.Builder, k, sys, props, factory, log)
	if err != nil {
		log.WithError(err).Error("k-induction run failed")
		return err
	}

	entries := report.FromRecords(result.Properties)
	if cfg.JSON {
		return report.WriteJSON(cmd.OutOrStdout(), entries)
	}
	return report.WriteText(cmd.OutOrStdout(), entries)
}

func main() {
	Execute()
}
