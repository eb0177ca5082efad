package durationdialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomofade/internal/core/timekeeper"
)

func TestValidateMinutes(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "10"},
		{input: " 25 "},
		{input: "9999"},
		{input: "0", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "", wantErr: true},
		{input: "10000", wantErr: true},
		{input: "307445734561825861", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateMinutes(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, timekeeper.ErrInvalidMinutes)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPendingResolvesOnce(t *testing.T) {
	result := newPending()
	result.confirm(600)
	result.cancel()
	result.confirm(60)

	seconds, ok, err := result.wait(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 600, seconds)
}

func TestPendingCancel(t *testing.T) {
	result := newPending()
	result.cancel()

	seconds, ok, err := result.wait(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, seconds)
}

func TestPendingContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := newPending().wait(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}
