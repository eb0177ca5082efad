package timekeeper

import (
	"time"

	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
)

// State represents whether the countdown is progressing.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Control labels for the start/pause control.
const (
	LabelStart = "Start"
	LabelPause = "Pause"
)

// ControlLabel returns the start/pause label matching the state.
func (state State) ControlLabel() string {
	if state == StateRunning {
		return LabelPause
	}
	return LabelStart
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventModeChange    EventType = "mode_change"
	EventRunningChange EventType = "running_change"
	EventTick          EventType = "tick"
	EventReset         EventType = "reset"
	EventAlarm         EventType = "alarm"
)

// Event represents a TimeKeeper update for observers.
// Every event carries enough to redraw the whole display.
type Event struct {
	Type      EventType
	Mode      model.ModeID
	State     State
	Remaining int
	Total     int
	Minutes   string
	Seconds   string
	Progress  float64
	Color     palette.RGB

	StartColor palette.RGB
	EndColor   palette.RGB

	At time.Time
}

// ControlLabel returns the label the start/pause control should show.
func (event Event) ControlLabel() string {
	return event.State.ControlLabel()
}
