package durationdialog

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"pomofade/internal/core/timekeeper"
)

// Prompter asks for a custom duration with a modal form dialog.
// RequestDuration blocks until the dialog closes, so it must not be called
// from the fyne UI goroutine.
type Prompter struct {
	window fyne.Window
	title  string
}

// New creates a prompter whose dialog is parented to window.
func New(window fyne.Window) *Prompter {
	return &Prompter{window: window, title: "Custom Time"}
}

// RequestDuration shows the dialog and returns the entered minutes in seconds.
func (prompter *Prompter) RequestDuration(ctx context.Context) (int, bool, error) {
	result := newPending()
	var form dialog.Dialog

	fyne.Do(func() {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("minutes")
		entry.Validator = ValidateMinutes

		form = dialog.NewForm(prompter.title, "Set", "Cancel",
			[]*widget.FormItem{widget.NewFormItem("Minutes", entry)},
			func(confirmed bool) {
				if !confirmed {
					result.cancel()
					return
				}
				minutes, err := timekeeper.ParseMinutes(entry.Text)
				if err != nil {
					result.cancel()
					return
				}
				result.confirm(minutes * 60)
			}, prompter.window)
		form.Show()
		prompter.window.Canvas().Focus(entry)
	})

	seconds, ok, err := result.wait(ctx)
	if err != nil {
		fyne.Do(func() {
			if form != nil {
				form.Hide()
			}
		})
	}
	return seconds, ok, err
}

// ValidateMinutes is the entry validator; the form keeps its confirm
// button disabled until it passes.
func ValidateMinutes(text string) error {
	_, err := timekeeper.ParseMinutes(text)
	return err
}

type promptResult struct {
	seconds int
	ok      bool
}

// pending is a single-shot result: the first resolution wins.
type pending struct {
	once   sync.Once
	result chan promptResult
}

func newPending() *pending {
	return &pending{result: make(chan promptResult, 1)}
}

func (p *pending) confirm(seconds int) {
	p.resolve(promptResult{seconds: seconds, ok: true})
}

func (p *pending) cancel() {
	p.resolve(promptResult{})
}

func (p *pending) resolve(result promptResult) {
	p.once.Do(func() {
		p.result <- result
	})
}

func (p *pending) wait(ctx context.Context) (int, bool, error) {
	select {
	case result := <-p.result:
		return result.seconds, result.ok, nil
	case <-ctx.Done():
		return 0, false, ctx.Err()
	}
}
