package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/scoreprep/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := newPipeline(ctx, st.EventRepo())
		if err != nil {
			return err
		}

		h := api.NewHandler(p, st.QuestionRepo(), appConfig.LLM.Provider, logger)
		return api.Serve(ctx, appConfig.Server.Addr, api.NewRouter(h, appConfig.Server.AllowedOrigins), logger)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
