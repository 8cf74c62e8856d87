package cmd

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/solarlune/precise"
	"github.com/solarlune/precise/internal/config"
	"github.com/spf13/cobra"
)

// app holds the state shared by every command of one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	precision int
	format    string

	cfg *config.Config
	log *log.Logger
}

// NewRootCommand builds the precise command tree.
func NewRootCommand() *cobra.Command {

	a := &app{
		cfg: config.Default(),
		log: log.New(io.Discard, "", 0),
	}

	rootCmd := &cobra.Command{
		Use:   "precise",
		Short: "Double-precision rotation calculator",
		Long: `precise evaluates rotations, interpolations and noise at double precision.

Angles are given and printed in degrees. Euler angles are X (pitch), Y (yaw)
and Z (roll), applied roll first, then pitch, then yaw. WorldForward is +Z.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log each step to stderr")
	flags.IntVarP(&a.precision, "precision", "p", config.DefaultPrecision, "decimal places to print (0 means the default, "+strconv.Itoa(config.DefaultPrecision)+")")
	flags.StringVarP(&a.format, "format", "f", config.FormatText, "output format (text or yaml)")

	rootCmd.AddCommand(
		a.eulerCommand(),
		a.axisCommand(),
		a.lookCommand(),
		a.slerpCommand(),
		a.rotateCommand(),
		a.angleCommand(),
		a.noiseCommand(),
		a.gltfCommand(),
		a.animateCommand(),
		versionCommand(),
	)

	return rootCmd

}

// Execute runs the precise command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {

	if a.verbose {
		a.log = log.New(cmd.ErrOrStderr(), "precise: ", log.Lmsgprefix)
	}

	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		a.cfg.Output.Precision = a.precision
	}
	if flags.Changed("format") {
		a.cfg.Output.Format = a.format
	}
	a.cfg.ApplyDefaults()

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log.Printf("%s: printing %s with %d decimal places", cmd.Name(), a.cfg.Output.Format, a.cfg.Output.Precision)

	return nil

}

func (a *app) printer(cmd *cobra.Command) printer {
	return printer{
		out:       cmd.OutOrStdout(),
		precision: a.cfg.Output.Precision,
		format:    a.cfg.Output.Format,
	}
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not a number: %w", i+1, arg, err)
		}
		values[i] = f
	}
	return values, nil
}

func parseVector(args []string) (precise.Vector3, error) {
	values, err := parseFloats(args)
	if err != nil {
		return precise.Vector3{}, err
	}
	if len(values) != 3 {
		return precise.Vector3{}, fmt.Errorf("expected 3 components, got %d", len(values))
	}
	return precise.NewVector3(values[0], values[1], values[2]), nil
}
