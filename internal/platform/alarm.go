package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrAlarmUnsupported indicates no sound player is available on this system.
var ErrAlarmUnsupported = errors.New("alarm playback unsupported")

// Alarm plays the countdown completion sound.
type Alarm interface {
	Ring(ctx context.Context) error
}

// NewAlarm returns a platform-specific alarm.
func NewAlarm() Alarm {
	return newAlarm()
}

// FallbackAlarm tries each alarm in order until one succeeds.
type FallbackAlarm []Alarm

// Ring returns the joined errors when every alarm fails.
func (alarms FallbackAlarm) Ring(ctx context.Context) error {
	var errs []error
	for _, alarm := range alarms {
		err := alarm.Ring(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrAlarmUnsupported
	}
	return errors.Join(errs...)
}

// RingAsync plays the alarm without blocking. Failures are logged only.
func RingAsync(ctx context.Context, alarm Alarm, logger *log.Logger) {
	if alarm == nil {
		return
	}
	go func() {
		if err := alarm.Ring(ctx); err != nil && logger != nil {
			logger.Warn("alarm playback failed", "err", err)
		}
	}()
}

type commandAlarm struct {
	path string
	args []string
}

func (alarm *commandAlarm) Ring(ctx context.Context) error {
	output, err := exec.CommandContext(ctx, alarm.path, alarm.args...).CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("%s: %w: %s", alarm.path, err, detail)
		}
		return fmt.Errorf("%s: %w", alarm.path, err)
	}
	return nil
}

type unsupportedAlarm struct{}

func (unsupportedAlarm) Ring(context.Context) error {
	return ErrAlarmUnsupported
}
