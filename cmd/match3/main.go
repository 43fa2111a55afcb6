// match3 is a terminal match-3 puzzle: swap neighbouring tiles to line up
// three or more of a kind and let the cascades run.
//
// Usage:
//
//	match3 list               - List available game modes
//	match3 play [game]        - Play a game (default: match3)
//	match3 menu               - Start menu to pick a mode interactively
//	match3 serve              - Start SSH server for remote play
//	match3 scores <game>      - Show high scores for a mode
//	match3 simulate           - Run random swaps headlessly and report
//	match3 layouts [dir]      - List starting layouts in a directory
//	match3 config             - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.match3/scores.db)
//	--log <path>    - Append structured logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tiles and chain cascades in your terminal",
	Long: `Match-3 is a terminal puzzle played on an 8x8 board of five colors.
Swap two neighbouring tiles to line up three or more of a kind. Matched
tiles disappear, the tiles above fall into the gaps and new ones drop in,
which may set off further matches.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Play random swaps without a terminal
  layouts   - List starting layouts
  config    - Print the default configuration

Examples:
  match3 play
  match3 play match3_moves --difficulty hard
  match3 menu --layouts ./layouts
  match3 serve --ssh :2222
  match3 scores match3_moves`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file (default: no logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger selected by --log and --log-level.
// The returned close func must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	})
	return logger, closer, nil
}

// mustLogger is newLogger for command handlers; it exits on error.
func mustLogger() (*log.Logger, func()) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playerName identifies the local player on the leaderboard.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
