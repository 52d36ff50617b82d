package lang

import (
	"encoding/hex"
	"log/slog"
	"strings"
)

// Color is an RGB color with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given channels.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// ParseHex decodes a color from exactly six hexadecimal digits, with an
// optional leading '#'. Digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return Color{}, ErrMalformedHex.With(slog.String("text", s))
	}

	var b [3]byte
	if _, err := hex.Decode(b[:], []byte(digits)); err != nil {
		return Color{}, ErrMalformedHex.With(slog.String("text", s))
	}

	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// Plus adds the given amounts to each channel, saturating at 255.
func (c Color) Plus(r, g, b uint8) Color {
	return Color{R: addSat(c.R, r), G: addSat(c.G, g), B: addSat(c.B, b)}
}

// Minus subtracts the given amounts from each channel, saturating at 0.
func (c Color) Minus(r, g, b uint8) Color {
	return Color{R: subSat(c.R, r), G: subSat(c.G, g), B: subSat(c.B, b)}
}

// String returns the color as lowercase "#rrggbb".
func (c Color) String() string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B})
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}

	*c = v

	return nil
}

func addSat(a, b uint8) uint8 {
	if s := a + b; s >= a {
		return s
	}

	return 255
}

func subSat(a, b uint8) uint8 {
	if b > a {
		return 0
	}

	return a - b
}
