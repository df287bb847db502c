package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lanes/internal/board"
)

func newCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}
	cmd.AddCommand(
		newCardAddCmd(),
		newCardMoveCmd(),
		newCardRemoveCmd(),
		newCardRenameCmd(),
	)
	return cmd
}

// cardFlags are the optional fields shared by card add and card move.
type cardFlags struct {
	done bool
	date string
	time string
}

func (f *cardFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.done, "done", false, "Mark the card done")
	cmd.Flags().StringVar(&f.date, "date", "", "Date annotation (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.time, "time", "", "Time annotation (HH:MM)")
}

func (f *cardFlags) build(column, title string) (board.Card, error) {
	b := board.NewCardBuilder().Column(column).Title(title)
	if f.done {
		b.Status(board.Done)
	}
	if f.date != "" {
		b.Date(f.date)
	}
	if f.time != "" {
		b.Time(f.time)
	}
	return b.Build()
}

func newCardAddCmd() *cobra.Command {
	var column string
	var flags cardFlags

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a card to a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, func(k *board.Kanban) (bool, error) {
				card, err := flags.build(column, args[0])
				if err != nil {
					return false, err
				}
				if err := k.AddCard(card); err != nil {
					return false, err
				}
				logger.Info("card added", "column", column, "title", args[0])
				fmt.Fprintln(cmd.OutOrStdout(), card)
				return true, nil
			})
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "", "Column to add the card to")
	cmd.MarkFlagRequired("column")
	flags.register(cmd)
	return cmd
}

func newCardMoveCmd() *cobra.Command {
	var from, to string
	var flags cardFlags

	cmd := &cobra.Command{
		Use:   "move <title>",
		Short: "Move a card to another column",
		Long: `Move a card to another column.

Cards are addressed by value: title plus the --from column and any
--done/--date/--time flags must match the card exactly. Every card with
that exact value moves together.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, func(k *board.Kanban) (bool, error) {
				card, err := flags.build(from, args[0])
				if err != nil {
					return false, err
				}
				if err := k.MoveCard(to, card); err != nil {
					return false, err
				}
				logger.Info("card moved", "title", args[0], "from", from, "to", to)
				return true, nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Column the card is in")
	cmd.Flags().StringVar(&to, "to", "", "Column to move the card to")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	flags.register(cmd)
	return cmd
}

// Removing and renaming cards need stable card identity; value equality
// cannot single out one of several identical cards. Until identifiers
// land these subcommands only say what they would do.

func newCardRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a card (not yet wired)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Would remove card %q — not yet supported: cards have no stable identity, so removal cannot address one of several equal cards.\n", args[0])
			return nil
		},
	}
}

func newCardRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-title> <new-title>",
		Short: "Rename a card (not yet wired)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Would rename card %q to %q — not yet supported: cards have no stable identity, so a rename cannot address one of several equal cards.\n", args[0], args[1])
			return nil
		},
	}
}
