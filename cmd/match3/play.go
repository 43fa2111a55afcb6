package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/layout"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the given mode (default: match3).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Enter/Space       - Select tile, then a neighbour to swap
  Mouse click       - Select or swap the clicked tile
  B/Esc             - Clear selection
  P                 - Pause
  R                 - Restart
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options (match3_moves only):
  easy   - 40 moves
  normal - 30 moves
  hard   - 20 moves
  fixed  - Use the config's move_limit

Examples:
  match3 play
  match3 play match3_moves --difficulty hard
  match3 play --layout ./layouts/stripes.yaml
  match3 play --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a starting layout YAML")
}

// applyGameSettings validates --config, --difficulty and --layout and hands
// them to the game package before any game is created.
func applyGameSettings() error {
	if flagConfig != "" {
		if _, err := config.LoadMatch3(flagConfig); err != nil {
			return err
		}
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)

	match3.SetLayout(nil)
	if flagLayout != "" {
		l, err := layout.LoadFile(flagLayout)
		if err != nil {
			return err
		}
		match3.SetLayout(&l)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameSettings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), tui.Options{
		Logger: logger,
		Player: playerName(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
