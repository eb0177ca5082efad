package storage

import (
	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
)

// ModeSettings holds the editable part of a mode definition.
type ModeSettings struct {
	Minutes    int
	StartColor palette.RGB
	EndColor   palette.RGB
}

// Settings defines user preferences for the timer.
type Settings struct {
	Pomodoro   ModeSettings
	ShortBreak ModeSettings
	LongBreak  ModeSettings

	DefaultMode model.ModeID
	Completion  model.CompletionPolicy
}

// DefaultSettings returns the stock pomodoro settings.
func DefaultSettings() Settings {
	settings := Settings{
		DefaultMode: model.ModePomodoro,
		Completion:  model.CompletionAdvance,
	}
	for _, mode := range model.DefaultModes() {
		*settings.modeSettings(mode.ID) = ModeSettings{
			Minutes:    mode.Duration / 60,
			StartColor: mode.StartColor,
			EndColor:   mode.EndColor,
		}
	}
	return settings
}

// TimeKeeperConfig converts settings to TimeKeeperConfig.
func (settings Settings) TimeKeeperConfig() model.TimeKeeperConfig {
	modes := model.DefaultModes()
	for index := range modes {
		mode := settings.modeSettings(modes[index].ID)
		modes[index].Duration = mode.Minutes * 60
		modes[index].StartColor = mode.StartColor
		modes[index].EndColor = mode.EndColor
	}
	return model.TimeKeeperConfig{
		Modes:       modes,
		DefaultMode: settings.DefaultMode,
		Completion:  settings.Completion,
	}
}

func (settings *Settings) modeSettings(id model.ModeID) *ModeSettings {
	switch id {
	case model.ModeShortBreak:
		return &settings.ShortBreak
	case model.ModeLongBreak:
		return &settings.LongBreak
	default:
		return &settings.Pomodoro
	}
}
