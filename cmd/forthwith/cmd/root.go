package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/forthwith/forthwith"
	"github.com/forthwith/forthwith/internal/config"
)

var (
	flagConfig  string
	flagTrace   bool
	flagTimeout time.Duration

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "forthwith",
	Short: "A small Forth interpreter",
	Long: `forthwith parses and evaluates a small Forth subset: integer
arithmetic, stack manipulation, and user-defined words.

Programs can be run from files or stdin, typed into a REPL, or submitted to
the bundled HTTP evaluation service, which records every program it runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("timeout") {
			cfg.EvalTimeout = config.Duration(flagTimeout)
		}
		if flagTrace {
			cfg.Trace = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "enable token trace logging")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "time limit per evaluation")
}

func Execute() error { return rootCmd.Execute() }

// newInterp builds the interpreter the active command will use.
func newInterp() *forthwith.Interp {
	var opts []forthwith.Option
	if cfg.Trace {
		opts = append(opts, forthwith.WithLogf(log.Printf))
	}
	return forthwith.New(opts...)
}
