package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Timing: Match3Timing{
			CascadeIntervalMS: 100,
			NoticeMS:          900,
		},
		Gameplay: Match3Gameplay{
			MoveLimit: 30,
		},
		Display: Match3Display{
			CellWidth: 4,
			Glyph:     "█",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3", "match3_moves":
		return defaultMatch3YAML
	default:
		return nil
	}
}
