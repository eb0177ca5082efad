package timekeeper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
)

var (
	// ErrUnknownMode is returned by SelectMode for ids outside the mode table.
	// The TimeKeeper state is left untouched.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrPromptPending indicates a custom duration prompt is already open.
	ErrPromptPending = errors.New("duration prompt already pending")
	// ErrInvalidConfig indicates the TimeKeeper configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid timekeeper config")
	// ErrClosed is returned by operations on a closed TimeKeeper.
	ErrClosed = errors.New("timekeeper closed")
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	// Scheduler drives Tick while running. When nil, the caller drives Tick.
	Scheduler Scheduler
	// Prompter is consulted when a customizable mode is selected.
	// When nil, the stored duration is used as is.
	Prompter Prompter
	Logger   *log.Logger
}

// Snapshot is a copy of the countdown state.
type Snapshot struct {
	Mode      model.ModeID
	Remaining int
	Total     int
	Running   bool
	Progress  float64
	Color     palette.RGB
}

// State returns the state machine state.
func (snapshot Snapshot) State() State {
	if snapshot.Running {
		return StateRunning
	}
	return StateIdle
}

// TimeKeeper is a countdown state machine cycling through timer modes.
type TimeKeeper struct {
	mu         sync.Mutex
	options    Config
	logger     *log.Logger
	completion model.CompletionPolicy
	modes      []model.ModeDefinition
	current    int
	remaining  int
	total      int
	running    bool
	stopTicks  func()
	epoch      uint64
	prompting  bool
	closed     bool
	events     []chan Event
}

// New creates a TimeKeeper idling in the default mode.
func New(config model.TimeKeeperConfig, options Config) (*TimeKeeper, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keeper := &TimeKeeper{
		options:    options,
		logger:     logger,
		completion: config.Completion,
		modes:      append([]model.ModeDefinition(nil), config.Modes...),
	}
	keeper.current = keeper.indexLocked(config.DefaultMode)
	keeper.total = keeper.modes[keeper.current].Duration
	keeper.remaining = keeper.total
	return keeper, nil
}

func validateConfig(config model.TimeKeeperConfig) error {
	if len(config.Modes) == 0 {
		return fmt.Errorf("%w: no modes", ErrInvalidConfig)
	}
	seen := make(map[model.ModeID]bool, len(config.Modes))
	for _, mode := range config.Modes {
		if seen[mode.ID] {
			return fmt.Errorf("%w: duplicate mode %q", ErrInvalidConfig, mode.ID)
		}
		seen[mode.ID] = true
		if mode.Duration <= 0 {
			return fmt.Errorf("%w: mode %q has non-positive duration", ErrInvalidConfig, mode.ID)
		}
	}
	if !seen[config.DefaultMode] {
		return fmt.Errorf("%w: default mode %q not in table", ErrInvalidConfig, config.DefaultMode)
	}
	if !config.Completion.Valid() {
		return fmt.Errorf("%w: completion policy %q", ErrInvalidConfig, config.Completion)
	}
	if config.Completion == model.CompletionAdvance && (!seen[model.ModePomodoro] || !seen[model.ModeShortBreak]) {
		return fmt.Errorf("%w: advance policy needs %q and %q", ErrInvalidConfig, model.ModePomodoro, model.ModeShortBreak)
	}
	return nil
}

// Subscribe registers a new observer channel.
// Sends never block; a full channel drops the event.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Modes returns the mode table in display order.
func (keeper *TimeKeeper) Modes() []model.ModeDefinition {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return append([]model.ModeDefinition(nil), keeper.modes...)
}

// Mode returns the current definition of a mode.
func (keeper *TimeKeeper) Mode(id model.ModeID) (model.ModeDefinition, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	index := keeper.indexLocked(id)
	if index < 0 {
		return model.ModeDefinition{}, false
	}
	return keeper.modes[index], true
}

// Snapshot returns the current countdown state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	progress := keeper.progressLocked()
	mode := keeper.modes[keeper.current]
	return Snapshot{
		Mode:      mode.ID,
		Remaining: keeper.remaining,
		Total:     keeper.total,
		Running:   keeper.running,
		Progress:  progress,
		Color:     palette.Interpolate(mode.StartColor, mode.EndColor, progress),
	}
}

// SelectMode switches to the given mode and stops the countdown.
//
// For a customizable mode the Prompter is asked for a new duration first; a
// cancelled prompt keeps the stored one. SelectMode blocks while the prompt is
// open. If the prompt fails or ctx ends, the selection is abandoned.
func (keeper *TimeKeeper) SelectMode(ctx context.Context, id model.ModeID) error {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return ErrClosed
	}
	index := keeper.indexLocked(id)
	if index < 0 {
		keeper.mu.Unlock()
		keeper.logger.Debug("ignoring unknown mode", "mode", id)
		return fmt.Errorf("%w: %q", ErrUnknownMode, id)
	}
	prompter := keeper.options.Prompter
	needsPrompt := keeper.modes[index].Customizable && prompter != nil
	if needsPrompt {
		if keeper.prompting {
			keeper.mu.Unlock()
			return ErrPromptPending
		}
		keeper.prompting = true
	}
	keeper.mu.Unlock()

	customSeconds, confirmed := 0, false
	if needsPrompt {
		seconds, ok, err := prompter.RequestDuration(ctx)
		keeper.mu.Lock()
		keeper.prompting = false
		keeper.mu.Unlock()
		if err != nil {
			return fmt.Errorf("request duration: %w", err)
		}
		customSeconds, confirmed = seconds, ok && seconds > 0
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return ErrClosed
	}
	if confirmed {
		keeper.modes[index].Duration = customSeconds
		keeper.logger.Debug("custom duration set", "mode", id, "seconds", customSeconds)
	}
	keeper.applyModeLocked(index)
	return nil
}

// ToggleRunning pauses a running countdown or starts an idle one.
func (keeper *TimeKeeper) ToggleRunning() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		keeper.pauseLocked()
		return
	}
	keeper.startLocked()
}

// Start begins the countdown. Starting a running countdown is a no-op.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.startLocked()
}

// Pause freezes the countdown. Pausing an idle countdown is a no-op.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.pauseLocked()
}

// Reset stops the countdown and restores the full duration of the current mode.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.resetLocked()
}

// Tick applies one elapsed interval. It is a no-op unless running.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.tickLocked()
}

// Close stops the countdown and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.stopScheduleLocked()
	keeper.running = false
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) scheduledTick(epoch uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if epoch != keeper.epoch {
		return
	}
	keeper.tickLocked()
}

func (keeper *TimeKeeper) tickLocked() {
	if !keeper.running {
		return
	}
	if keeper.remaining > 0 {
		keeper.remaining--
	}
	keeper.emitLocked(EventTick)
	if keeper.remaining > 0 {
		return
	}

	keeper.emitLocked(EventAlarm)
	finished := keeper.modes[keeper.current].ID
	switch keeper.completion {
	case model.CompletionReset:
		keeper.logger.Debug("countdown finished, resetting", "mode", finished)
		keeper.resetLocked()
	default:
		next := keeper.indexLocked(nextMode(finished))
		keeper.logger.Debug("countdown finished, advancing", "mode", finished, "next", keeper.modes[next].ID)
		keeper.applyModeLocked(next)
		keeper.startLocked()
	}
}

func nextMode(current model.ModeID) model.ModeID {
	if current == model.ModePomodoro {
		return model.ModeShortBreak
	}
	return model.ModePomodoro
}

func (keeper *TimeKeeper) startLocked() {
	if keeper.running || keeper.closed {
		return
	}
	keeper.epoch++
	if keeper.options.Scheduler != nil {
		epoch := keeper.epoch
		keeper.stopTicks = keeper.options.Scheduler.Every(keeper.options.TickInterval, func() {
			keeper.scheduledTick(epoch)
		})
	}
	keeper.running = true
	keeper.logger.Debug("countdown started", "mode", keeper.modes[keeper.current].ID, "remaining", keeper.remaining)
	keeper.emitLocked(EventRunningChange)
}

func (keeper *TimeKeeper) pauseLocked() {
	if !keeper.running {
		return
	}
	keeper.stopScheduleLocked()
	keeper.running = false
	keeper.logger.Debug("countdown paused", "mode", keeper.modes[keeper.current].ID, "remaining", keeper.remaining)
	keeper.emitLocked(EventRunningChange)
}

func (keeper *TimeKeeper) resetLocked() {
	keeper.stopScheduleLocked()
	keeper.total = keeper.modes[keeper.current].Duration
	keeper.remaining = keeper.total
	keeper.running = false
	keeper.emitLocked(EventReset)
}

func (keeper *TimeKeeper) applyModeLocked(index int) {
	keeper.stopScheduleLocked()
	keeper.current = index
	keeper.total = keeper.modes[index].Duration
	keeper.remaining = keeper.total
	keeper.running = false
	keeper.logger.Debug("mode selected", "mode", keeper.modes[index].ID, "seconds", keeper.total)
	keeper.emitLocked(EventModeChange)
}

func (keeper *TimeKeeper) stopScheduleLocked() {
	keeper.epoch++
	if keeper.stopTicks != nil {
		keeper.stopTicks()
		keeper.stopTicks = nil
	}
}

func (keeper *TimeKeeper) indexLocked(id model.ModeID) int {
	for index, mode := range keeper.modes {
		if mode.ID == id {
			return index
		}
	}
	return -1
}

func (keeper *TimeKeeper) progressLocked() float64 {
	return 1 - float64(keeper.remaining)/float64(keeper.total)
}

// Current returns a mode change event describing the present state,
// for presentations that need an initial render.
func (keeper *TimeKeeper) Current() Event {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.eventLocked(EventModeChange)
}

func (keeper *TimeKeeper) emitLocked(eventType EventType) {
	event := keeper.eventLocked(eventType)
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (keeper *TimeKeeper) eventLocked(eventType EventType) Event {
	mode := keeper.modes[keeper.current]
	progress := keeper.progressLocked()
	minutes, seconds := FormatClock(keeper.remaining)
	state := StateIdle
	if keeper.running {
		state = StateRunning
	}

	return Event{
		Type:       eventType,
		Mode:       mode.ID,
		State:      state,
		Remaining:  keeper.remaining,
		Total:      keeper.total,
		Minutes:    minutes,
		Seconds:    seconds,
		Progress:   progress,
		Color:      palette.Interpolate(mode.StartColor, mode.EndColor, progress),
		StartColor: mode.StartColor,
		EndColor:   mode.EndColor,
		At:         time.Now(),
	}
}
