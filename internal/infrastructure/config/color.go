package config

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// ParseColor parses a #rrggbb hex string into an opaque color
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || len(hex) == len(s) {
		return color.RGBA{}, eris.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, eris.Wrapf(err, "invalid color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// MustColor is ParseColor for values already validated by the loader
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}
