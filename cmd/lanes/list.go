package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lanes/internal/board"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the whole board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, func(k *board.Kanban) (bool, error) {
				fmt.Fprint(cmd.OutOrStdout(), k.Render())
				return false, nil
			})
		},
	}
}
