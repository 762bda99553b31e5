// Package cli implements the command-line interface for stickercube.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/config"
	"github.com/SeamusWaldron/stickercube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool
	strict     bool

	cfg    = config.Default()
	logger = newLogger(os.Stderr)
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "stickercube",
	Short: "3x3 cube state engine",
	Long: `stickercube - apply standard move notation to a 3x3 cube and inspect the result.

Scrambles are written in standard notation: U D F B R L, wide moves
Uw..Lw (or u..l), rotations x y z and slices M E S, each optionally
followed by ' or 2. States can be rendered as text or images and saved
to a local snapshot database.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.stickercube/stickercube.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject unknown notation tokens")
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stickercube",
	})
}

// setup loads the config and applies flag overrides.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("strict") {
		cfg.Notation.Strict = strict
	}

	logger = newLogger(cmd.ErrOrStderr())
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	logger.Debug("config loaded", "path", configPath, "strict", cfg.Notation.Strict)
	return nil
}

// parseScramble joins args into one scramble and parses it with the
// configured strictness. Skipped tokens are logged.
func parseScramble(args []string) ([]stickercube.Move, error) {
	s := strings.Join(args, " ")
	if cfg.Notation.Strict {
		return stickercube.ParseMovesStrict(s)
	}
	for _, token := range strings.Fields(s) {
		if _, err := stickercube.ParseMove(token); err != nil {
			logger.Warn("skipping unknown token", "token", token)
		}
	}
	return stickercube.ParseMoves(s), nil
}

// getDBPath returns the database path from flag, config or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.Storage.Path != "" {
		return cfg.StoragePath()
	}
	return storage.DefaultDBPath()
}

func openDB() (*storage.DB, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.OpenAndMigrate(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", path)

	return db, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
