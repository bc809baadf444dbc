package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forthwith/forthwith/internal/history"
)

var (
	flagHistoryLimit int
	flagHistoryKeep  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded programs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded programs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded program and its output",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent programs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	historyListCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "maximum number of programs to list")
	historyPruneCmd.Flags().IntVar(&flagHistoryKeep, "keep", 100, "number of most recent programs to keep")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	progs, err := store.List(cmd.Context(), flagHistoryLimit)
	if err != nil {
		return err
	}
	for _, prog := range progs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
			prog.ID, prog.CreatedAt.Format("2006-01-02 15:04:05"), prog.Source)
	}
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Prune(cmd.Context(), flagHistoryKeep)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d program(s)\n", deleted)
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	prog, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id:      %s\n", prog.ID)
	fmt.Fprintf(out, "ran at:  %s\n", prog.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "source:  %s\n", prog.Source)
	fmt.Fprintf(out, "output:  %s\n", prog.Output)
	return nil
}
