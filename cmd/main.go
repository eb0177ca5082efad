package main

import (
	"context"
	"errors"
	"time"

	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
	"pomofade/internal/core/timekeeper"
	"pomofade/internal/logger"
	"pomofade/internal/platform"
	"pomofade/internal/storage"
	"pomofade/internal/ui/animation"
	"pomofade/internal/ui/durationdialog"
	"pomofade/internal/ui/timerwindow"
	"pomofade/internal/ui/tray"
	"pomofade/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/charmbracelet/log"
)

const appName = "pomofade"

func main() {
	appLogger := logger.FromEnv("")

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		appLogger.Info("already running, activating existing window", "err", err)
		if activateErr := platform.ActivateRunning(appName); activateErr != nil {
			appLogger.Error("activate running instance", "err", activateErr)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		appLogger.Warn("using default settings", "err", err)
	}
	config := settings.TimeKeeperConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID("com.pomofade.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))

	var keeper *timekeeper.TimeKeeper
	selectMode := func(id model.ModeID) {
		go func() {
			if err := keeper.SelectMode(ctx, id); err != nil && !errors.Is(err, context.Canceled) {
				appLogger.Debug("mode selection ignored", "mode", id, "err", err)
			}
		}()
	}

	timerWindow, err := timerwindow.New(fyneApp, config.Modes, timerwindow.Actions{
		OnSelectMode: selectMode,
		OnToggle:     func() { keeper.ToggleRunning() },
		OnReset:      func() { keeper.Reset() },
	})
	if err != nil {
		appLogger.Error("build timer window", "err", err)
		return
	}

	keeper, err = timekeeper.New(config, timekeeper.Config{
		TickInterval: time.Second,
		Scheduler:    timekeeper.SystemScheduler{},
		Prompter:     durationdialog.New(timerWindow.Window()),
		Logger:       appLogger,
	})
	if err != nil {
		appLogger.Error("create timekeeper", "err", err)
		return
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, config.Modes, tray.Icons{
			Running: resources.MustIcon(resources.IconRunning),
			Idle:    resources.MustIcon(resources.IconIdle),
		}, tray.Callbacks{
			OnShow:       timerWindow.Show,
			OnToggle:     func() { keeper.ToggleRunning() },
			OnReset:      func() { keeper.Reset() },
			OnSelectMode: selectMode,
			OnQuit: func() {
				keeper.Close()
				fyneApp.Quit()
			},
		})
	} else {
		appLogger.Info("system tray unsupported on this platform")
	}

	flasher := animation.New(animation.DefaultConfig(), timerWindow.SetBackground)
	alarm := platform.NewAlarm()

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			timerWindow.Render(event)
			if trayManager != nil {
				current := event
				fyne.Do(func() {
					trayManager.Update(current)
				})
			}
			if event.Type == timekeeper.EventAlarm {
				handleAlarm(ctx, event, alarm, flasher, timerWindow, appLogger)
			}
		}
	}()

	go guard.ServeActivations(func() {
		fyne.Do(timerWindow.Show)
	})

	fyneApp.Lifecycle().SetOnStarted(func() {
		initial := keeper.Current()
		timerWindow.Render(initial)
		if trayManager != nil {
			trayManager.Update(initial)
		}
	})

	timerWindow.Window().SetCloseIntercept(func() {
		if trayManager != nil {
			timerWindow.Window().Hide()
			return
		}
		keeper.Close()
		fyneApp.Quit()
	})

	timerWindow.Show()
	fyneApp.Run()
	flasher.Stop()
	keeper.Close()
}

func handleAlarm(ctx context.Context, event timekeeper.Event, alarm platform.Alarm, flasher *animation.Engine, timerWindow *timerwindow.Window, logger *log.Logger) {
	logger.Info("countdown complete", "mode", event.Mode)
	platform.RingAsync(ctx, alarm, logger)

	done := flasher.Flash(ctx, animation.FlashSpec{
		On:  event.EndColor,
		Off: palette.White,
	})
	go func() {
		<-done
		timerWindow.RestoreBackground()
	}()
}
