package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lanes/internal/board"
	"lanes/internal/storage"
)

func newInitCmd() *cobra.Command {
	var columns []string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a fresh board",
		Long:  "Create a new board at the configured location with the configured column list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			if _, err := store.Load(cmd.Context()); err == nil {
				return fmt.Errorf("a board already exists at %s", store.Location())
			} else if !errors.Is(err, storage.ErrNotFound) {
				return err
			}

			names := cfg.Columns
			if len(columns) > 0 {
				names = columns
			}
			k := board.New(names...)
			if err := store.Save(cmd.Context(), k); err != nil {
				return err
			}
			logger.Info("board created", "location", store.Location(), "columns", len(names))
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with columns: %v\n", store.Location(), names)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Column names for the new board (default from config)")
	return cmd
}
