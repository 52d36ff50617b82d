package lang

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// swatchWidth is the number of cells a swatch occupies.
const swatchWidth = 6

// Swatch renders a block of cells filled with c. On terminals without
// color support the block is blank.
func Swatch(c Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Render(strings.Repeat(" ", swatchWidth))
}

// FormatSwatch writes one line per binding: a swatch of its color, its
// hex value and its name.
func FormatSwatch(_ context.Context, w io.Writer, bs []Binding) error {
	for _, b := range bs {
		_, err := fmt.Fprintf(w, "%s %s %s\n", Swatch(b.Color), b.Color, b.Name)
		if err != nil {
			return err
		}
	}

	return nil
}
