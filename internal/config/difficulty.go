package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset parses a preset name, case-insensitively. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched; easy and hard scale the jump
// assist windows and enemy speed relative to them.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	var assist, enemy float64
	switch preset {
	case DifficultyEasy:
		assist, enemy = 1.5, 0.75
	case DifficultyHard:
		assist, enemy = 0.5, 1.4
	default:
		return
	}

	cfg.Player.CoyoteTime *= assist
	cfg.Player.JumpBuffer *= assist
	cfg.Enemy.Speed *= enemy
}
