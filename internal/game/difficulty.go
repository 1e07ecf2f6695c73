package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/proxx/internal/config"
)

// ErrNoPreset is returned for difficulties without a configured board
var ErrNoPreset = errors.New("difficulty has no preset board")

// Difficulty selects a board preset
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyCustom
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyCustom:
		return "Custom"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// ParseDifficulty accepts a name ("easy", "Hard", ...) or a menu number (0-3)
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "0":
		return DifficultyEasy, nil
	case "medium", "1":
		return DifficultyMedium, nil
	case "hard", "2":
		return DifficultyHard, nil
	case "custom", "3":
		return DifficultyCustom, nil
	default:
		return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
	}
}

// DefaultDifficulty returns game.default_difficulty, or Medium if it is unset or unknown
func DefaultDifficulty() Difficulty {
	d, err := ParseDifficulty(config.Get().Game.DefaultDifficulty)
	if err != nil || d == DifficultyCustom {
		return DifficultyMedium
	}
	return d
}

// PresetFor returns the board size configured for d. Custom has no preset
// and falls back to Medium.
func PresetFor(d Difficulty) GameConfig {
	presets := config.Get().Game.Presets

	var p config.PresetConfig
	switch d {
	case DifficultyEasy:
		p = presets.Easy
	case DifficultyHard:
		p = presets.Hard
	default:
		p = presets.Medium
	}

	return GameConfig{Width: p.Width, Height: p.Height, Mines: p.Mines}
}

// LookupPreset is PresetFor without the fallback: Custom and unknown values
// return ErrNoPreset.
func LookupPreset(d Difficulty) (GameConfig, error) {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return PresetFor(d), nil
	default:
		return GameConfig{}, fmt.Errorf("%s: %w", d, ErrNoPreset)
	}
}
