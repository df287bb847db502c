package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lanes/internal/board"
	"lanes/internal/github"
)

func newImportCmd() *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "import <owner/repo>",
		Short: "Import open GitHub issues as cards",
		Long: `Import the open issues of a GitHub repository as incomplete cards.

Authentication:
  1. GitHub CLI: Run 'gh auth login' (preferred)
  2. Environment variable: Set GITHUB_TOKEN`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, ok := strings.Cut(args[0], "/")
			if !ok || owner == "" || name == "" {
				return fmt.Errorf("malformed repository %q: want owner/repo", args[0])
			}

			client, err := github.New()
			if err != nil {
				return err
			}
			issues, err := client.OpenIssues(cmd.Context(), owner, name)
			if err != nil {
				return err
			}
			logger.Info("issues fetched", "repo", args[0], "count", len(issues))

			return withBoard(cmd, func(k *board.Kanban) (bool, error) {
				for _, issue := range issues {
					title := fmt.Sprintf("%s (#%d) %s", issue.Title, issue.Number, issue.URL)
					card, err := board.NewCardBuilder().Column(column).Title(title).Build()
					if err != nil {
						return false, err
					}
					if err := k.AddCard(card); err != nil {
						return false, err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d issues into %q\n", len(issues), column)
				return len(issues) > 0, nil
			})
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "To Do", "Column to import the issues into")
	return cmd
}
