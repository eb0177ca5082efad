package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomofade/internal/core/palette"
)

type recorder struct {
	mu     sync.Mutex
	colors []palette.RGB
}

func (recorder *recorder) paint(rgb palette.RGB) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.colors = append(recorder.colors, rgb)
}

func (recorder *recorder) snapshot() []palette.RGB {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]palette.RGB(nil), recorder.colors...)
}

var (
	red   = palette.RGB{R: 0xff}
	white = palette.White
	blue  = palette.RGB{B: 0xff}
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("flash did not finish")
	}
}

func TestFlashPaintsCyclesAndEndsOnOff(t *testing.T) {
	rec := &recorder{}
	engine := New(Config{Cycles: 2, OnDuration: time.Millisecond, OffDuration: time.Millisecond}, rec.paint)

	waitDone(t, engine.Flash(context.Background(), FlashSpec{On: red, Off: white}))

	assert.Equal(t, []palette.RGB{red, white, red, white}, rec.snapshot())
}

func TestStopCancelsSequence(t *testing.T) {
	rec := &recorder{}
	engine := New(Config{Cycles: 5, OnDuration: time.Hour, OffDuration: time.Hour}, rec.paint)

	done := engine.Flash(context.Background(), FlashSpec{On: red, Off: white})
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, time.Millisecond)
	engine.Stop()
	waitDone(t, done)

	assert.Equal(t, []palette.RGB{red}, rec.snapshot())
}

func TestNewFlashReplacesActiveOne(t *testing.T) {
	rec := &recorder{}
	engine := New(Config{Cycles: 1, OnDuration: 20 * time.Millisecond, OffDuration: time.Millisecond}, rec.paint)

	first := engine.Flash(context.Background(), FlashSpec{On: red, Off: white})
	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 1 }, time.Second, time.Millisecond)
	second := engine.Flash(context.Background(), FlashSpec{On: blue, Off: white})
	waitDone(t, first)
	waitDone(t, second)

	colors := rec.snapshot()
	require.GreaterOrEqual(t, len(colors), 3)
	assert.Equal(t, red, colors[0])
	assert.Equal(t, []palette.RGB{blue, white}, colors[len(colors)-2:])
	assert.NotContains(t, colors[1:], red)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Positive(t, config.Cycles)
	assert.Positive(t, config.OnDuration)
	assert.Positive(t, config.OffDuration)
}
