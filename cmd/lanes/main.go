// Command lanes manages a personal kanban board kept in a markdown file
// (or an S3 object). Subcommands map one-to-one onto board operations;
// running lanes with no subcommand opens the interactive board.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lanes/internal/board"
	"lanes/internal/config"
	"lanes/internal/storage"
)

var (
	// Persistent CLI flags
	configFlag  string
	boardFlag   string
	verboseFlag bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "lanes"})
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lanes",
		Short: "A personal kanban board in a markdown file",
		Long: `lanes keeps a kanban board in a plain markdown file.

Columns are "## " headings, cards are "- [ ]" task lines with optional
@{YYYY-MM-DD} date and @@{HH:MM} time annotations. The board location
can also be an s3://bucket/key URL.

Run with no subcommand to open the interactive board.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default $XDG_CONFIG_HOME/lanes/config.yml)")
	rootCmd.PersistentFlags().StringVar(&boardFlag, "board", "", "Board location: file path or s3://bucket/key")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newColumnCmd(),
		newCardCmd(),
		newServeCmd(),
		newImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file and layers the --board flag on top.
func loadConfig() (*config.Config, error) {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if boardFlag != "" {
		cfg.Board = boardFlag
	}
	logger.Debug("config resolved", "path", path, "board", cfg.Board)
	return cfg, nil
}

// openStore opens the storage backend for the configured board location.
func openStore(cfg *config.Config) (storage.Store, error) {
	return storage.Open(cfg.Board, cfg.S3)
}

// withBoard loads the board, runs fn over it, and saves it back when fn
// reports a mutation. Every mutating subcommand goes through here.
func withBoard(cmd *cobra.Command, fn func(k *board.Kanban) (mutated bool, err error)) error {
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
		return err
	}
	mutated, err := fn(k)
	if err != nil {
		return err
	}
	if !mutated {
		return nil
	}
	if err := store.Save(cmd.Context(), k); err != nil {
		return err
	}
	logger.Debug("board saved", "location", store.Location())
	return nil
}
