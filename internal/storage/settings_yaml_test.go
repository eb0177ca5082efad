package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
)

func TestLoadSettingsFileMissingReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettingsFileAppliesValidFields(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
pomodoro:
  minutes: 50
  end_color: "#112233"
short_break:
  minutes: -4
  start_color: "not a color"
long_break:
  minutes: 20
default_mode: shortBreak
on_complete: reset
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	settings, err := LoadSettingsFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, 50, settings.Pomodoro.Minutes)
	assert.Equal(t, palette.White, settings.Pomodoro.StartColor)
	assert.Equal(t, palette.RGB{R: 0x11, G: 0x22, B: 0x33}, settings.Pomodoro.EndColor)
	assert.Equal(t, 5, settings.ShortBreak.Minutes)
	assert.Equal(t, palette.White, settings.ShortBreak.StartColor)
	assert.Equal(t, 20, settings.LongBreak.Minutes)
	assert.Equal(t, model.ModeShortBreak, settings.DefaultMode)
	assert.Equal(t, model.CompletionReset, settings.Completion)
}

func TestLoadSettingsFileIgnoresOversizedMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes string
		want    int
	}{
		{name: "at limit", minutes: "9999", want: 9999},
		{name: "above limit", minutes: "10000", want: 25},
		{name: "overflows seconds", minutes: "153722867280912931", want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "settings.yaml")
			content := "pomodoro:\n  minutes: " + tt.minutes + "\n"
			require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

			settings, err := LoadSettingsFile(configPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, settings.Pomodoro.Minutes)

			config := settings.TimeKeeperConfig()
			pomodoro, ok := config.Mode(model.ModePomodoro)
			require.True(t, ok)
			assert.Equal(t, tt.want*60, pomodoro.Duration)
		})
	}
}

func TestLoadSettingsFileIgnoresUnknownEnums(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("default_mode: nap\non_complete: loop\n"), 0o644))

	settings, err := LoadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, model.ModePomodoro, settings.DefaultMode)
	assert.Equal(t, model.CompletionAdvance, settings.Completion)
}

func TestLoadSettingsFileRejectsBrokenYaml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("pomodoro: [\n"), 0o644))

	settings, err := LoadSettingsFile(configPath)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveSettingsFileRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	settings := DefaultSettings()
	settings.LongBreak.Minutes = 30
	settings.ShortBreak.EndColor = palette.RGB{R: 1, G: 2, B: 3}
	settings.Completion = model.CompletionReset

	require.NoError(t, SaveSettingsFile(configPath, settings))

	loaded, err := LoadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestTimeKeeperConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.Pomodoro.Minutes = 45

	config := settings.TimeKeeperConfig()
	require.Len(t, config.Modes, 3)
	pomodoro, ok := config.Mode(model.ModePomodoro)
	require.True(t, ok)
	assert.Equal(t, 45*60, pomodoro.Duration)

	longBreak, ok := config.Mode(model.ModeLongBreak)
	require.True(t, ok)
	assert.True(t, longBreak.Customizable)
	assert.Equal(t, 15*60, longBreak.Duration)
	assert.Equal(t, model.CompletionAdvance, config.Completion)
}

func TestDefaultSettingsMatchDefaultModes(t *testing.T) {
	assert.Equal(t, model.DefaultTimeKeeperConfig(), DefaultSettings().TimeKeeperConfig())
}
