package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lanes/internal/storage"
	"lanes/internal/tui"
)

// runTUI opens the interactive board. It is the root command's action.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	k, err := store.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no board at %s; run 'lanes init' first", store.Location())
		}
		return err
	}

	model := tui.NewModel(cmd.Context(), k, store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
