package timekeeper

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pomofade/internal/core/model"
)

// ErrInvalidMinutes rejects custom duration input that is not a whole number
// between 1 and model.MaxMinutes.
var ErrInvalidMinutes = fmt.Errorf("please enter a whole number of minutes from 1 to %d", model.MaxMinutes)

// Prompter asks the user for a custom countdown length.
//
// RequestDuration resolves exactly once: ok is true with a positive number of
// seconds on confirm, and false on cancel. Input validation happens inside the
// prompt; invalid values never reach the TimeKeeper. A non-nil error means the
// prompt itself failed or ctx ended.
type Prompter interface {
	RequestDuration(ctx context.Context) (seconds int, ok bool, err error)
}

// PromptFunc adapts a function to Prompter.
type PromptFunc func(ctx context.Context) (int, bool, error)

// RequestDuration calls fn.
func (fn PromptFunc) RequestDuration(ctx context.Context) (int, bool, error) {
	return fn(ctx)
}

// ParseMinutes parses a whole number of minutes typed by the user.
// Values outside 1..model.MaxMinutes are rejected.
func ParseMinutes(text string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || minutes <= 0 || minutes > model.MaxMinutes {
		return 0, ErrInvalidMinutes
	}
	return minutes, nil
}
