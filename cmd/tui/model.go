package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"pomofade/internal/core/model"
	"pomofade/internal/core/palette"
	"pomofade/internal/core/timekeeper"
	"pomofade/internal/platform"
)

const (
	flashSteps    = 6
	flashInterval = 300 * time.Millisecond
	bell          = "\a"
)

// engine is the part of the TimeKeeper the terminal model drives.
type engine interface {
	SelectMode(ctx context.Context, id model.ModeID) error
	ToggleRunning()
	Reset()
	Current() timekeeper.Event
	Modes() []model.ModeDefinition
}

type engineEventMsg timekeeper.Event

type selectDoneMsg struct {
	mode model.ModeID
	err  error
}

type flashMsg struct{}

// bellMsg asks the view to emit the terminal bell with its next frame.
type bellMsg struct{}

type timerModel struct {
	ctx    context.Context
	engine engine
	alarm  platform.Alarm
	logger *log.Logger

	modes []model.ModeDefinition
	event timekeeper.Event

	input    textinput.Model
	reply    chan<- promptReply
	inputErr string

	flashLeft  int
	flashColor palette.RGB
	ringBell   bool

	width  int
	height int
}

func newTimerModel(ctx context.Context, keeper engine, alarm platform.Alarm, logger *log.Logger) timerModel {
	input := textinput.New()
	input.Placeholder = "minutes"
	input.CharLimit = 4
	input.Width = 10

	if logger == nil {
		logger = log.New(io.Discard)
	}

	return timerModel{
		ctx:    ctx,
		engine: keeper,
		alarm:  alarm,
		logger: logger,
		modes:  keeper.Modes(),
		event:  keeper.Current(),
		input:  input,
	}
}

func (m timerModel) Init() tea.Cmd {
	return nil
}

func (m timerModel) prompting() bool {
	return m.reply != nil
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case engineEventMsg:
		event := timekeeper.Event(msg)
		m.event = event
		if event.Type == timekeeper.EventAlarm {
			m.flashLeft = flashSteps
			m.flashColor = event.EndColor
			return m, tea.Batch(m.ring(), flashTick())
		}
		return m, nil

	case bellMsg:
		m.ringBell = true
		return m, nil

	case flashMsg:
		m.ringBell = false
		if m.flashLeft > 0 {
			m.flashLeft--
		}
		if m.flashLeft > 0 {
			return m, flashTick()
		}
		return m, nil

	case promptRequestMsg:
		if m.prompting() {
			msg.reply <- promptReply{}
			return m, nil
		}
		m.reply = msg.reply
		m.inputErr = ""
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd

	case selectDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Debug("mode selection ignored", "mode", msg.mode, "err", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.prompting() {
			return m.updatePrompt(msg)
		}
		return m.updateTimer(msg)
	}

	if m.prompting() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m timerModel) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case " ", "s":
		m.engine.ToggleRunning()
		return m, nil
	case "r":
		m.engine.Reset()
		return m, nil
	}

	if index, err := strconv.Atoi(msg.String()); err == nil && index >= 1 && index <= len(m.modes) {
		return m, m.selectMode(m.modes[index-1].ID)
	}
	return m, nil
}

func (m timerModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m = m.resolvePrompt(promptReply{})
		return m, tea.Quit
	case "esc":
		return m.resolvePrompt(promptReply{}), nil
	case "enter":
		minutes, err := timekeeper.ParseMinutes(m.input.Value())
		if err != nil {
			m.inputErr = err.Error()
			m.input.SetValue("")
			return m, nil
		}
		return m.resolvePrompt(promptReply{seconds: minutes * 60, ok: true}), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m timerModel) resolvePrompt(result promptReply) timerModel {
	m.reply <- result
	m.reply = nil
	m.inputErr = ""
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m timerModel) selectMode(id model.ModeID) tea.Cmd {
	ctx, keeper := m.ctx, m.engine
	return func() tea.Msg {
		return selectDoneMsg{mode: id, err: keeper.SelectMode(ctx, id)}
	}
}

// ring plays the platform alarm and falls back to the terminal bell, which
// has to go out with a rendered frame rather than straight to stdout.
func (m timerModel) ring() tea.Cmd {
	ctx, alarm, logger := m.ctx, m.alarm, m.logger
	return func() tea.Msg {
		if alarm == nil {
			return bellMsg{}
		}
		if err := alarm.Ring(ctx); err != nil {
			logger.Warn("alarm failed, using terminal bell", "err", err)
			return bellMsg{}
		}
		return nil
	}
}

func flashTick() tea.Cmd {
	return tea.Tick(flashInterval, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// backgroundColor is the current fade color, or the alarm flash while it runs.
func (m timerModel) backgroundColor() palette.RGB {
	if m.flashLeft > 0 && m.flashLeft%2 == 0 {
		return palette.White
	}
	if m.flashLeft > 0 {
		return m.flashColor
	}
	return m.event.Color
}

func (m timerModel) modeLabel(id model.ModeID) string {
	for _, mode := range m.modes {
		if mode.ID == id {
			return mode.Label
		}
	}
	return string(id)
}

func (m timerModel) customLabel() string {
	for _, mode := range m.modes {
		if mode.Customizable {
			return mode.Label
		}
	}
	return "Custom Time"
}

func (m timerModel) View() string {
	bg := background(m.backgroundColor())
	paint := func(style lipgloss.Style) lipgloss.Style {
		return style.Background(bg)
	}

	tabs := make([]string, 0, len(m.modes))
	for i, mode := range m.modes {
		style := tabStyle
		if mode.ID == m.event.Mode {
			style = activeTabStyle
		}
		tabs = append(tabs, paint(style).Render(fmt.Sprintf("%d %s", i+1, mode.Label)))
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		paint(clockStyle).Foreground(colorInk).Render(m.event.Minutes + ":" + m.event.Seconds),
		"",
		paint(statusStyle).Foreground(colorInk).Render(m.modeLabel(m.event.Mode) + " · " + string(m.event.State)),
	}

	if m.prompting() {
		lines := []string{
			paint(statusStyle).Render(m.customLabel()),
			paint(helpStyle).Render("Enter minutes, esc to cancel"),
			m.input.View(),
		}
		if m.inputErr != "" {
			lines = append(lines, paint(errorStyle).Render(m.inputErr))
		}
		sections = append(sections, "", paint(promptStyle).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	} else {
		help := []string{
			"[space] " + m.event.ControlLabel(),
			"[r] Reset",
			fmt.Sprintf("[1-%d] Mode", len(m.modes)),
			"[q] Quit",
		}
		sections = append(sections, "", paint(helpStyle).Render(strings.Join(help, "  ")))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	view := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(bg))
	if m.ringBell {
		return bell + view
	}
	return view
}
