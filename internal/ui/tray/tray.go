package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomofade/internal/core/model"
	"pomofade/internal/core/timekeeper"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow       func()
	OnToggle     func()
	OnReset      func()
	OnSelectMode func(model.ModeID)
	OnQuit       func()
}

// Icons are swapped on the tray as the countdown starts and stops.
type Icons struct {
	Running fyne.Resource
	Idle    fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	icons       Icons
	modes       []model.ModeDefinition
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	modeItems   map[model.ModeID]*fyne.MenuItem
	running     bool
	initialized bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, modes []model.ModeDefinition, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
		modes:     modes,
		modeItems: make(map[model.ModeID]*fyne.MenuItem, len(modes)),
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(timekeeper.LabelStart, func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	for _, mode := range modes {
		id := mode.ID
		manager.modeItems[id] = fyne.NewMenuItem(mode.Label, func() {
			if manager.callbacks.OnSelectMode != nil {
				manager.callbacks.OnSelectMode(id)
			}
		})
	}

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// Update reflects an engine event in the tray.
func (manager *Manager) Update(event timekeeper.Event) {
	label := string(event.Mode)
	for _, mode := range manager.modes {
		if mode.ID == event.Mode {
			label = mode.Label
		}
	}
	manager.statusItem.Label = fmt.Sprintf("%s %s:%s", label, event.Minutes, event.Seconds)
	manager.toggleItem.Label = event.ControlLabel()
	for id, item := range manager.modeItems {
		item.Checked = id == event.Mode
	}

	running := event.State == timekeeper.StateRunning
	if running != manager.running || !manager.initialized {
		manager.running = running
		manager.initialized = true
		manager.refreshIcon()
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	icon := manager.icons.Idle
	if manager.running {
		icon = manager.icons.Running
	}
	if manager.app != nil && icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	items := []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItemSeparator(),
	}
	for _, mode := range manager.modes {
		items = append(items, manager.modeItems[mode.ID])
	}
	items = append(items, fyne.NewMenuItemSeparator(), fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	}))
	manager.app.SetSystemTrayMenu(fyne.NewMenu("pomofade", items...))
}
