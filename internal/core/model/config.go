package model

import "pomofade/internal/core/palette"

// ModeID identifies a timer mode.
type ModeID string

const (
	ModePomodoro   ModeID = "pomodoro"
	ModeShortBreak ModeID = "shortBreak"
	ModeLongBreak  ModeID = "longBreak"
)

// CompletionPolicy decides what happens when a countdown reaches zero.
type CompletionPolicy string

const (
	// CompletionAdvance alternates pomodoro and short break and keeps running.
	CompletionAdvance CompletionPolicy = "advance"
	// CompletionReset restores the finished mode and stops.
	CompletionReset CompletionPolicy = "reset"
)

// Valid reports whether the policy is a known value.
func (policy CompletionPolicy) Valid() bool {
	return policy == CompletionAdvance || policy == CompletionReset
}

// MaxMinutes bounds any mode length given in minutes, by the user or the settings file.
const MaxMinutes = 9999

// ModeDefinition describes a single countdown mode.
type ModeDefinition struct {
	ID    ModeID
	Label string
	// Duration is the countdown length in whole seconds.
	Duration     int
	StartColor   palette.RGB
	EndColor     palette.RGB
	Customizable bool
}

// TimeKeeperConfig contains runtime settings for the TimeKeeper state machine.
type TimeKeeperConfig struct {
	// Modes is ordered; the order is used for display.
	Modes       []ModeDefinition
	DefaultMode ModeID
	Completion  CompletionPolicy
}

// DefaultModes returns the stock pomodoro mode table.
func DefaultModes() []ModeDefinition {
	return []ModeDefinition{
		{
			ID:         ModePomodoro,
			Label:      "Pomodoro",
			Duration:   25 * 60,
			StartColor: palette.White,
			EndColor:   palette.MustParseHex("#ff6b6b"),
		},
		{
			ID:         ModeShortBreak,
			Label:      "Short Break",
			Duration:   5 * 60,
			StartColor: palette.White,
			EndColor:   palette.MustParseHex("#4ecdc4"),
		},
		{
			ID:           ModeLongBreak,
			Label:        "Custom Time",
			Duration:     15 * 60,
			StartColor:   palette.White,
			EndColor:     palette.MustParseHex("#45b7d1"),
			Customizable: true,
		},
	}
}

// DefaultTimeKeeperConfig returns the stock configuration.
func DefaultTimeKeeperConfig() TimeKeeperConfig {
	return TimeKeeperConfig{
		Modes:       DefaultModes(),
		DefaultMode: ModePomodoro,
		Completion:  CompletionAdvance,
	}
}

// Mode looks up a mode by id.
func (config TimeKeeperConfig) Mode(id ModeID) (ModeDefinition, bool) {
	for _, mode := range config.Modes {
		if mode.ID == id {
			return mode, true
		}
	}
	return ModeDefinition{}, false
}
