package timekeeper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		remaining int
		minutes   string
		seconds   string
	}{
		{remaining: 0, minutes: "00", seconds: "00"},
		{remaining: 9, minutes: "00", seconds: "09"},
		{remaining: 65, minutes: "01", seconds: "05"},
		{remaining: 1500, minutes: "25", seconds: "00"},
		{remaining: 3599, minutes: "59", seconds: "59"},
		{remaining: -3, minutes: "00", seconds: "00"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.remaining), func(t *testing.T) {
			minutes, seconds := FormatClock(tt.remaining)
			assert.Equal(t, tt.minutes, minutes)
			assert.Equal(t, tt.seconds, seconds)
		})
	}
}

func TestFormatClockCoversHour(t *testing.T) {
	for remaining := 0; remaining < 3600; remaining++ {
		minutes, seconds := FormatClock(remaining)
		assert.Equal(t, fmt.Sprintf("%02d", remaining/60), minutes)
		assert.Equal(t, fmt.Sprintf("%02d", remaining%60), seconds)
		assert.Len(t, minutes, 2)
		assert.Len(t, seconds, 2)
	}
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "04:05", FormatRemaining(245))
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "10", want: 10},
		{input: " 25 ", want: 25},
		{input: "9999", want: 9999},
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
			got, err := ParseMinutes(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMinutes)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
