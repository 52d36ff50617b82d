package lang

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

var palette = []Binding{
	{Name: "accent", Color: RGB(0x89, 0xb4, 0xfa)},
	{Name: "base", Color: RGB(0x1e, 0x1e, 0x2e)},
}

func TestFormatNative(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatNative(context.Background(), &buf, palette); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "let accent = #89b4fa;\nlet base = #1e1e2e;\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	// The output is valid source for the same bindings.
	env := runString(buf.String())
	if len(env.Faults()) != 0 {
		t.Fatalf("faults: %v", env.Faults())
	}

	for _, b := range palette {
		if got, _ := env.Lookup(b.Name); got != b.Color {
			t.Errorf("%s = %v, want %v", b.Name, got, b.Color)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name: "compact",
			want: `{"accent":"#89b4fa","base":"#1e1e2e"}` + "\n",
		},
		{
			name:   "indented",
			indent: 2,
			want:   "{\n  \"accent\": \"#89b4fa\",\n  \"base\": \"#1e1e2e\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := FormatJSON(context.Background(), &buf, palette, tt.indent); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestFormatYAML(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		var buf bytes.Buffer
		if err := FormatYAML(context.Background(), &buf, palette, indent); err != nil {
			t.Fatalf("indent %d: unexpected error: %v", indent, err)
		}

		var got map[string]string
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("indent %d: output %q is not YAML: %v", indent, buf.String(), err)
		}

		for _, b := range palette {
			if got[b.Name] != b.Color.String() {
				t.Errorf("indent %d: %s = %q, want %q", indent, b.Name, got[b.Name], b.Color)
			}
		}
	}
}

func TestFormatSwatch(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatSwatch(context.Background(), &buf, palette); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(palette) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(palette), buf.String())
	}

	for i, b := range palette {
		if !strings.HasSuffix(lines[i], " "+b.Color.String()+" "+b.Name) {
			t.Errorf("line %d = %q", i, lines[i])
		}
	}
}
