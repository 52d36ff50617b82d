package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// FormatNative writes the bindings as source text that evaluates to the
// same bindings, one let statement per line.
func FormatNative(_ context.Context, w io.Writer, bs []Binding) error {
	for _, b := range bs {
		if _, err := fmt.Fprintf(w, "let %s = %s;\n", b.Name, b.Color); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the bindings as a JSON object of name to "#rrggbb",
// sorted by name. An indent of zero writes a single line.
func FormatJSON(_ context.Context, w io.Writer, bs []Binding, indent int) error {
	m := make(map[string]Color, len(bs))
	for _, b := range bs {
		m[b.Name] = b.Color
	}

	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(m)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the bindings as a YAML mapping of name to "#rrggbb",
// in the order given. An indent of zero writes flow style.
func FormatYAML(
	ctx context.Context,
	w io.Writer,
	bs []Binding,
	indent int,
) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	m := make(yaml.MapSlice, 0, len(bs))
	for _, b := range bs {
		m = append(m, yaml.MapItem{Key: b.Name, Value: b.Color.String()})
	}

	yamlData, err := yaml.MarshalContext(ctx, m, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
