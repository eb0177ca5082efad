package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
)

const settingsFileName = "settings.yaml"

type yamlMode struct {
	Minutes    int    `yaml:"minutes"`
	StartColor string `yaml:"start_color"`
	EndColor   string `yaml:"end_color"`
}

type yamlSettings struct {
	Pomodoro    yamlMode `yaml:"pomodoro"`
	ShortBreak  yamlMode `yaml:"short_break"`
	LongBreak   yamlMode `yaml:"long_break"`
	DefaultMode string   `yaml:"default_mode"`
	OnComplete  string   `yaml:"on_complete"`
}

// LoadSettings reads user preferences from the per-user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from an explicit YAML file.
// Fields that are missing or invalid keep their default values.
func LoadSettingsFile(configPath string) (Settings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the per-user config directory.
func SaveSettings(appName string, settings Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to an explicit YAML file.
func SaveSettingsFile(configPath string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Pomodoro:    toYamlMode(settings.Pomodoro),
		ShortBreak:  toYamlMode(settings.ShortBreak),
		LongBreak:   toYamlMode(settings.LongBreak),
		DefaultMode: string(settings.DefaultMode),
		OnComplete:  string(settings.Completion),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func toYamlMode(mode ModeSettings) yamlMode {
	return yamlMode{
		Minutes:    mode.Minutes,
		StartColor: mode.StartColor.Hex(),
		EndColor:   mode.EndColor.Hex(),
	}
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	applyYamlMode(&settings.Pomodoro, fileData.Pomodoro)
	applyYamlMode(&settings.ShortBreak, fileData.ShortBreak)
	applyYamlMode(&settings.LongBreak, fileData.LongBreak)

	switch model.ModeID(fileData.DefaultMode) {
	case model.ModePomodoro, model.ModeShortBreak, model.ModeLongBreak:
		settings.DefaultMode = model.ModeID(fileData.DefaultMode)
	}
	if policy := model.CompletionPolicy(fileData.OnComplete); policy.Valid() {
		settings.Completion = policy
	}
}

func applyYamlMode(mode *ModeSettings, fileData yamlMode) {
	if fileData.Minutes > 0 && fileData.Minutes <= model.MaxMinutes {
		mode.Minutes = fileData.Minutes
	}
	if rgb, err := palette.ParseHex(fileData.StartColor); err == nil {
		mode.StartColor = rgb
	}
	if rgb, err := palette.ParseHex(fileData.EndColor); err == nil {
		mode.EndColor = rgb
	}
}
