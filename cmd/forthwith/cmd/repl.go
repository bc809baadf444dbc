package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/forthwith/forthwith"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive line-by-line evaluation",
	Long: `Starts an interactive session. Each line is evaluated as a fragment
of one ongoing program: the stack and any defined words persist until the
session ends. A prompt is shown only when stdin is a terminal, so piping a
script through the repl produces clean output.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	sess := newInterp().NewSession()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			fmt.Fprintf(out, "%v> ", sess.Stack())
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		ctx := cmd.Context()
		var cancel context.CancelFunc
		if timeout := cfg.EvalTimeout.Duration(); timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
		}
		text, err := sess.Eval(ctx, line)
		if cancel != nil {
			cancel()
		}

		var perr *forthwith.ParseError
		switch {
		case errors.As(err, &perr):
			fmt.Fprintf(out, "ParseError: %s\n", perr.Message)
		case err != nil:
			fmt.Fprintf(out, "error: %v\n", err)
		case text != "":
			fmt.Fprintln(out, text)
		}
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
