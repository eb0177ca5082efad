package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomofade/internal/core/model"
	"pomofade/internal/core/timekeeper"
	"pomofade/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"mode", "policy", "log-level", "log-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestHelpDoesNotStartTimer(t *testing.T) {
	output, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, output, "pomofade-tui")
	assert.Contains(t, output, "--policy")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	output, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, path)

	settings, err := storage.LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultSettings(), settings)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorIs(t, err, errSettingsExist)

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	output, err := execute(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(output))
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	tests := []struct {
		name    string
		opts    options
		wantErr error
		check   func(t *testing.T, config model.TimeKeeperConfig)
	}{
		{
			name: "defaults when file is missing",
			opts: options{configPath: path},
			check: func(t *testing.T, config model.TimeKeeperConfig) {
				assert.Equal(t, model.ModePomodoro, config.DefaultMode)
				assert.Equal(t, model.CompletionAdvance, config.Completion)
			},
		},
		{
			name: "mode and policy flags",
			opts: options{configPath: path, mode: "shortBreak", policy: "reset"},
			check: func(t *testing.T, config model.TimeKeeperConfig) {
				assert.Equal(t, model.ModeShortBreak, config.DefaultMode)
				assert.Equal(t, model.CompletionReset, config.Completion)
			},
		},
		{
			name:    "unknown mode",
			opts:    options{configPath: path, mode: "nap"},
			wantErr: timekeeper.ErrUnknownMode,
		},
		{
			name:    "unknown policy",
			opts:    options{configPath: path, policy: "repeat"},
			wantErr: timekeeper.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := loadConfig(tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomofade.log")

	appLogger, closer, err := newLogger(options{logFile: path, logLevel: "debug"})
	require.NoError(t, err)
	appLogger.Debug("hello", "mode", model.ModePomodoro)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
