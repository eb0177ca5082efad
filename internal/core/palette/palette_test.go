package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#ff6b6b", want: RGB{R: 0xff, G: 0x6b, B: 0x6b}},
		{name: "without hash", input: "4ecdc4", want: RGB{R: 0x4e, G: 0xcd, B: 0xc4}},
		{name: "upper case", input: "#45B7D1", want: RGB{R: 0x45, G: 0xb7, B: 0xd1}},
		{name: "short form", input: "#fff", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffffff", White.Hex())
	assert.Equal(t, "#00070a", RGB{R: 0, G: 7, B: 10}.Hex())
}

func TestInterpolateEndpoints(t *testing.T) {
	colors := []RGB{
		White,
		{R: 0xff, G: 0x6b, B: 0x6b},
		{R: 0x4e, G: 0xcd, B: 0xc4},
		{R: 0, G: 0, B: 0},
	}
	progresses := []float64{0, 0.1, 0.25, 0.5, 0.77, 1}

	for _, from := range colors {
		for _, to := range colors {
			assert.Equal(t, from, Interpolate(from, to, 0), "progress 0 from %s to %s", from.Hex(), to.Hex())
			assert.Equal(t, to, Interpolate(from, to, 1), "progress 1 from %s to %s", from.Hex(), to.Hex())
		}
		for _, progress := range progresses {
			assert.Equal(t, from, Interpolate(from, from, progress), "same color at %v", progress)
		}
	}
}

func TestInterpolateRounds(t *testing.T) {
	start := White
	end := MustParseHex("#ff6b6b")

	// 0xff + (0x6b-0xff)*0.5 = 181
	assert.Equal(t, RGB{R: 0xff, G: 181, B: 181}, Interpolate(start, end, 0.5))
	// 255 - 148*0.3 = 210.6 -> 211
	assert.Equal(t, RGB{R: 0xff, G: 211, B: 211}, Interpolate(start, end, 0.3))
}

func TestNRGBA(t *testing.T) {
	value := RGB{R: 1, G: 2, B: 3}.NRGBA()
	assert.Equal(t, uint8(1), value.R)
	assert.Equal(t, uint8(2), value.G)
	assert.Equal(t, uint8(3), value.B)
	assert.Equal(t, uint8(0xff), value.A)
}
