package cmd

import (
	"errors"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/forthwith/forthwith/internal/history"
	"github.com/forthwith/forthwith/internal/server"
)

var flagNoHistory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP evaluation service",
	Long: `Serves the interpreter over HTTP.

POST /eval evaluates one program with a fresh stack and dictionary and
records it to history. GET /programs and GET /programs/{id} read the history.
GET /ws upgrades to a websocket session where each message is evaluated
against session-scoped state, which is what the live editor speaks.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not record evaluated programs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	var store *history.Store
	if !flagNoHistory {
		var err error
		store, err = history.Open(cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	srv := server.New(newInterp(), store, cfg.EvalTimeout.Duration(), log.Printf)

	log.Printf("forthwith listening on %s", cfg.Listen)
	err := http.ListenAndServe(cfg.Listen, srv.Handler())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
