package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"lanes/internal/server"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the board over HTTP.

GET  /            the rendered board document
GET  /api/board   the board as JSON
POST /api/columns {"name": ...}
POST /api/cards   {"column": ..., "title": ..., "status": "x"|" ", "date": ..., "time": ...}
POST /api/cards/move {"target": ..., "card": {...}}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.Listen
			}

			srv := server.New(store, logger)
			logger.Info("serving board", "board", store.Location(), "listen", listen)
			return http.ListenAndServe(listen, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (default from config, \":8080\")")
	return cmd
}
