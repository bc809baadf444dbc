package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a program from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	var source []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		source, err = os.ReadFile(args[0])
	} else {
		source, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout := cfg.EvalTimeout.Duration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := newInterp().Run(ctx, string(source))
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
