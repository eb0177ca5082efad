package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex indicates a color string is not in #rrggbb form.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is an opaque 24-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// White is the default start color for every mode.
var White = RGB{R: 0xff, G: 0xff, B: 0xff}

// ParseHex parses a "#rrggbb" string.
func ParseHex(value string) (RGB, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	parsed, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	return RGB{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
	}, nil
}

// MustParseHex is ParseHex for package-level color literals.
func MustParseHex(value string) RGB {
	rgb, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return rgb
}

// Hex renders the color as lower-case "#rrggbb".
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// NRGBA converts to an opaque image/color value for canvas objects.
func (rgb RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}
}

// Interpolate blends start towards end by progress, rounding each channel.
// Progress is expected in [0,1]; values outside extrapolate and saturate.
func Interpolate(start, end RGB, progress float64) RGB {
	return RGB{
		R: lerpChannel(start.R, end.R, progress),
		G: lerpChannel(start.G, end.G, progress),
		B: lerpChannel(start.B, end.B, progress),
	}
}

func lerpChannel(start, end uint8, progress float64) uint8 {
	value := math.Round(float64(start) + (float64(end)-float64(start))*progress)
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}
