package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pomofade/internal/core/model"
	"pomofade/internal/core/timekeeper"
	"pomofade/internal/logger"
	"pomofade/internal/platform"
	"pomofade/internal/storage"
)

const appName = "pomofade"

var errSettingsExist = errors.New("settings file already exists")

type options struct {
	configPath string
	mode       string
	policy     string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "pomofade-tui",
		Short:         "Countdown timer whose background fades as time runs out",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default is <user config dir>/pomofade/settings.yaml)")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "mode to open with: pomodoro, shortBreak or longBreak")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "what happens when a countdown ends: advance or reset")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default $"+logger.EnvLogLevel+" or info)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of discarding them")

	cmd.AddCommand(newConfigCmd(&opts))
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := settingsPath(opts.configPath)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", errSettingsExist, path)
			}
			if err := storage.SaveSettingsFile(path, storage.DefaultSettings()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := settingsPath(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func settingsPath(configPath string) (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return storage.SettingsPath(appName)
}

// loadConfig reads the settings file and applies the command line overrides.
func loadConfig(opts options) (model.TimeKeeperConfig, error) {
	path, err := settingsPath(opts.configPath)
	if err != nil {
		return model.TimeKeeperConfig{}, err
	}
	settings, err := storage.LoadSettingsFile(path)
	if err != nil {
		return model.TimeKeeperConfig{}, err
	}
	config := settings.TimeKeeperConfig()

	if opts.mode != "" {
		id := model.ModeID(opts.mode)
		if _, ok := config.Mode(id); !ok {
			return model.TimeKeeperConfig{}, fmt.Errorf("--mode %q: %w", opts.mode, timekeeper.ErrUnknownMode)
		}
		config.DefaultMode = id
	}
	if opts.policy != "" {
		policy := model.CompletionPolicy(opts.policy)
		if !policy.Valid() {
			return model.TimeKeeperConfig{}, fmt.Errorf("--policy %q: %w", opts.policy, timekeeper.ErrInvalidConfig)
		}
		config.Completion = policy
	}
	return config, nil
}

func newLogger(opts options) (*log.Logger, io.Closer, error) {
	if opts.logFile == "" {
		return logger.New(io.Discard, opts.logLevel), io.NopCloser(nil), nil
	}
	file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := opts.logLevel
	if level == "" {
		level = os.Getenv(logger.EnvLogLevel)
	}
	return logger.New(file, level), file, nil
}

func run(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	appLogger, closer, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	config, err := loadConfig(opts)
	if err != nil {
		return err
	}

	prompter := &programPrompter{}
	keeper, err := timekeeper.New(config, timekeeper.Config{
		TickInterval: time.Second,
		Scheduler:    timekeeper.SystemScheduler{},
		Prompter:     prompter,
		Logger:       appLogger,
	})
	if err != nil {
		return err
	}
	defer keeper.Close()

	program := tea.NewProgram(newTimerModel(ctx, keeper, platform.NewAlarm(), appLogger), tea.WithAltScreen(), tea.WithContext(ctx))
	prompter.bind(program.Send)

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			program.Send(engineEventMsg(event))
		}
	}()

	appLogger.Info("starting", "mode", config.DefaultMode, "policy", config.Completion)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
