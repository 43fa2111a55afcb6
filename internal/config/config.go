// Package config provides YAML-based game configuration loading and
// difficulty presets for the match-3 game.
package config

import "fmt"

// Match3Config contains all tunable settings of the match-3 game.
type Match3Config struct {
	Timing   Match3Timing   `yaml:"timing"`
	Gameplay Match3Gameplay `yaml:"gameplay"`
	Display  Match3Display  `yaml:"display"`
}

// Match3Timing defines pacing of the presentation layer.
type Match3Timing struct {
	CascadeIntervalMS int `yaml:"cascade_interval_ms"` // Delay between cascade passes
	NoticeMS          int `yaml:"notice_ms"`           // Lifetime of HUD notices
}

// Match3Gameplay defines rules that are not part of the board itself.
type Match3Gameplay struct {
	MoveLimit int `yaml:"move_limit"` // Swaps available in moves mode
}

// Match3Display defines how tiles are drawn.
type Match3Display struct {
	CellWidth int    `yaml:"cell_width"`
	Glyph     string `yaml:"glyph"`
}

// Validate checks that every setting is usable.
func (c Match3Config) Validate() error {
	if c.Timing.CascadeIntervalMS <= 0 {
		return fmt.Errorf("timing.cascade_interval_ms must be positive, got %d", c.Timing.CascadeIntervalMS)
	}
	if c.Timing.NoticeMS < 0 {
		return fmt.Errorf("timing.notice_ms must not be negative, got %d", c.Timing.NoticeMS)
	}
	if c.Gameplay.MoveLimit <= 0 {
		return fmt.Errorf("gameplay.move_limit must be positive, got %d", c.Gameplay.MoveLimit)
	}
	if c.Display.CellWidth < 3 || c.Display.CellWidth > 8 {
		return fmt.Errorf("display.cell_width must be in [3, 8], got %d", c.Display.CellWidth)
	}
	if c.Display.Glyph == "" {
		return fmt.Errorf("display.glyph must not be empty")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// MoveLimitForPreset returns the move budget for a preset, or 0 if the
// preset keeps the configured value.
func MoveLimitForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 40
	case DifficultyNormal:
		return 30
	case DifficultyHard:
		return 20
	default:
		return 0
	}
}
