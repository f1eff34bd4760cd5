package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/quantik/config"
	"github.com/katalvlaran/quantik/gateway"
	"github.com/katalvlaran/quantik/logger"
	"github.com/katalvlaran/quantik/render"
	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags and the configuration loaded
// from them before any subcommand runs.
type rootOptions struct {
	configFile string
	jsonLogs   bool
	verbosity  int

	cfg *config.Config
}

// NewRootCmd returns the quantik command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "quantik",
		Short: "quantik - quantum circuits, operators and Grover search",
		Long: `quantik builds quantum circuits, converts them to operators and runs
them on a local simulator or a remote job service.

Available commands:
  grover - search for marked bit strings with amplitude amplification
  oracle - show the phase oracle for a set of marked bit strings
  bell   - prepare a Bell state and estimate Pauli observables
  ops    - walk through the operator algebra
  status - check authentication and run a trivial job

Examples:
  quantik grover --marked 000,111
  quantik grover --marked 101 --format json --shots 2048
  quantik oracle --marked 01,10
  quantik status --config quantik.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "emit logs as JSON")
	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")

	root.AddCommand(
		newGroverCmd(opts),
		newOracleCmd(),
		newBellCmd(opts),
		newOpsCmd(),
		newStatusCmd(opts),
	)

	return root
}

// setup loads the configuration and initialises the global logger; flags
// given on the command line win over the file and environment.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	v, err := config.New(o.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("json-logs") {
		v.Set("log.json", o.jsonLogs)
	}
	if cmd.Flags().Changed("verbose") {
		v.Set("log.verbosity", o.verbosity)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err = logger.Initialize(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.cfg = cfg
	logger.Logger.Debugw("configuration loaded",
		logger.FieldComponent, cmd.Name(),
		"simulated", cfg.Gateway.Simulated,
		logger.FieldShots, cfg.Gateway.Shots)

	return nil
}

// runFlags are the execution flags shared by commands that submit circuits.
type runFlags struct {
	shots     int
	simulated bool
	format    string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.shots, "shots", 0, "number of shots (default from config)")
	cmd.Flags().BoolVar(&f.simulated, "simulated", true, "run on the local simulator")
	cmd.Flags().StringVar(&f.format, "format", render.FormatChart,
		"result format: "+strings.Join(render.Formats, ", "))
}

func (f *runFlags) validate() error {
	if !slices.Contains(render.Formats, strings.ToLower(f.format)) {
		return fmt.Errorf("--format %q: %w", f.format, render.ErrUnknownFormat)
	}

	return nil
}

// service builds a gateway.Service from the loaded configuration with the
// command's flag overrides applied.
func (o *rootOptions) service(cmd *cobra.Command, f *runFlags) (*gateway.Service, error) {
	gcfg := o.cfg.ToGateway()
	if cmd.Flags().Changed("simulated") {
		gcfg.Simulated = f.simulated
	}
	if f.shots > 0 {
		gcfg.Shots = f.shots
	}

	return gateway.NewService(gcfg, logger.Logger)
}
