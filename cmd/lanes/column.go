package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lanes/internal/board"
)

func newColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
	}
	cmd.AddCommand(
		newColumnAddCmd(),
		newColumnListCmd(),
		newColumnRemoveCmd(),
		newColumnRenameCmd(),
	)
	return cmd
}

func newColumnAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Append a column to the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, func(k *board.Kanban) (bool, error) {
				k.AddColumn(args[0])
				logger.Info("column added", "name", args[0])
				return true, nil
			})
		},
	}
}

func newColumnListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <name>",
		Short: "Print the cards in one column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, func(k *board.Kanban) (bool, error) {
				if !k.HasColumn(args[0]) {
					return false, fmt.Errorf("%w: %q", board.ErrColumnNotFound, args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "## %s\n", args[0])
				for _, c := range k.CardsIn(args[0]) {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return false, nil
			})
		},
	}
}

// Removing and renaming columns need a policy for the cards that still
// reference them (cascade or fail); until that lands these subcommands
// only say what they would do.

func newColumnRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a column (not yet wired)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Would remove column %q — not yet supported: cards referencing it need a cascade or reassignment policy first.\n", args[0])
			return nil
		},
	}
}

func newColumnRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a column (not yet wired)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Would rename column %q to %q — not yet supported: cards referencing the old name need a reassignment policy first.\n", args[0], args[1])
			return nil
		},
	}
}
