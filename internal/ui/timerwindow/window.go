package timerwindow

import (
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
	"pomofade/internal/core/timekeeper"
)

// ErrMissingControl indicates the window cannot be built with the given modes or actions.
var ErrMissingControl = errors.New("missing required control")

// Actions are invoked when the user operates a control.
type Actions struct {
	OnSelectMode func(model.ModeID)
	OnToggle     func()
	OnReset      func()
}

// Window is the main timer window.
type Window struct {
	window       fyne.Window
	background   *canvas.Rectangle
	minutesText  *canvas.Text
	secondsText  *canvas.Text
	modeText     *canvas.Text
	toggleButton *widget.Button
	resetButton  *widget.Button
	modeButtons  map[model.ModeID]*widget.Button
	modeLabels   map[model.ModeID]string
	color        palette.RGB
}

var timerTextColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

const (
	timerTextSize = 72
	windowWidth   = 420
	windowHeight  = 320
)

// New creates the timer window with one button per mode.
func New(app fyne.App, modes []model.ModeDefinition, actions Actions) (*Window, error) {
	if err := validate(modes, actions); err != nil {
		return nil, err
	}

	window := app.NewWindow("pomofade")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(palette.White.NRGBA())

	minutesText := newClockText("00")
	secondsText := newClockText("00")
	colonText := newClockText(":")

	modeText := canvas.NewText("", timerTextColor)
	modeText.Alignment = fyne.TextAlignCenter
	modeText.TextSize = 16

	timerWindow := &Window{
		window:      window,
		background:  background,
		minutesText: minutesText,
		secondsText: secondsText,
		modeText:    modeText,
		modeButtons: make(map[model.ModeID]*widget.Button, len(modes)),
		modeLabels:  make(map[model.ModeID]string, len(modes)),
		color:       palette.White,
	}

	modeRow := container.NewHBox(layout.NewSpacer())
	for _, mode := range modes {
		id := mode.ID
		button := widget.NewButton(mode.Label, func() {
			actions.OnSelectMode(id)
		})
		timerWindow.modeButtons[id] = button
		timerWindow.modeLabels[id] = mode.Label
		modeRow.Add(button)
	}
	modeRow.Add(layout.NewSpacer())

	timerWindow.toggleButton = widget.NewButton(timekeeper.LabelStart, actions.OnToggle)
	timerWindow.toggleButton.Importance = widget.HighImportance
	timerWindow.resetButton = widget.NewButton("Reset", actions.OnReset)
	controls := container.NewHBox(layout.NewSpacer(), timerWindow.toggleButton, timerWindow.resetButton, layout.NewSpacer())

	clock := container.NewHBox(layout.NewSpacer(), minutesText, colonText, secondsText, layout.NewSpacer())
	content := container.NewVBox(
		modeRow,
		layout.NewSpacer(),
		modeText,
		clock,
		layout.NewSpacer(),
		controls,
	)

	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	return timerWindow, nil
}

func validate(modes []model.ModeDefinition, actions Actions) error {
	if len(modes) == 0 {
		return fmt.Errorf("%w: no mode buttons", ErrMissingControl)
	}
	for _, mode := range modes {
		if mode.Label == "" {
			return fmt.Errorf("%w: mode %q has no label", ErrMissingControl, mode.ID)
		}
	}
	switch {
	case actions.OnSelectMode == nil:
		return fmt.Errorf("%w: mode selection", ErrMissingControl)
	case actions.OnToggle == nil:
		return fmt.Errorf("%w: start/pause", ErrMissingControl)
	case actions.OnReset == nil:
		return fmt.Errorf("%w: reset", ErrMissingControl)
	}
	return nil
}

func newClockText(text string) *canvas.Text {
	clockText := canvas.NewText(text, timerTextColor)
	clockText.TextSize = timerTextSize
	clockText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	return clockText
}

// Window returns the underlying fyne window, e.g. to parent dialogs.
func (timerWindow *Window) Window() fyne.Window {
	return timerWindow.window
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Render updates the whole display from an engine event.
// Safe to call from any goroutine.
func (timerWindow *Window) Render(event timekeeper.Event) {
	fyne.Do(func() {
		timerWindow.renderUnsafe(event)
	})
}

// SetBackground paints the background without touching the remembered color.
func (timerWindow *Window) SetBackground(rgb palette.RGB) {
	fyne.Do(func() {
		timerWindow.paintUnsafe(rgb)
	})
}

// RestoreBackground repaints the color of the last rendered event.
func (timerWindow *Window) RestoreBackground() {
	fyne.Do(func() {
		timerWindow.paintUnsafe(timerWindow.color)
	})
}

func (timerWindow *Window) renderUnsafe(event timekeeper.Event) {
	timerWindow.minutesText.Text = event.Minutes
	timerWindow.minutesText.Refresh()
	timerWindow.secondsText.Text = event.Seconds
	timerWindow.secondsText.Refresh()

	timerWindow.color = event.Color
	timerWindow.paintUnsafe(event.Color)

	timerWindow.toggleButton.SetText(event.ControlLabel())
	timerWindow.modeText.Text = timerWindow.modeLabels[event.Mode]
	timerWindow.modeText.Refresh()
	timerWindow.window.SetTitle(fmt.Sprintf("%s:%s %s", event.Minutes, event.Seconds, timerWindow.modeLabels[event.Mode]))

	for id, button := range timerWindow.modeButtons {
		if id == event.Mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
}

func (timerWindow *Window) paintUnsafe(rgb palette.RGB) {
	timerWindow.background.FillColor = rgb.NRGBA()
	canvas.Refresh(timerWindow.background)
}
