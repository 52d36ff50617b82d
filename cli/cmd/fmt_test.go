package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

const fmtSource = "let base = #1e1e2e; let accent = rgb(137, 180, 250); let bad = nope"

func TestNativeRun(t *testing.T) {
	ctx, out, errs := testStreams(fmtSource)

	if err := (&Native{Input{Sources: []string{"-"}}}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "let accent = #89b4fa;\nlet base = #1e1e2e;\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}

	if errs.String() != "EvalError: name not found (name=nope)\n" {
		t.Errorf("stderr = %q", errs.String())
	}

	// The output evaluates to the same bindings.
	ctx2, out2, _ := testStreams(out.String())
	if err := (&Native{Input{Sources: []string{"-"}}}).Run(ctx2); err != nil {
		t.Fatal(err)
	}

	if out2.String() != want {
		t.Errorf("round trip = %q, want %q", out2.String(), want)
	}
}

func TestJSONRun(t *testing.T) {
	tests := []struct {
		indent int
		want   string
	}{
		{0, `{"accent":"#89b4fa","base":"#1e1e2e"}` + "\n"},
		{2, "{\n  \"accent\": \"#89b4fa\",\n  \"base\": \"#1e1e2e\"\n}\n"},
	}

	for _, tt := range tests {
		ctx, out, _ := testStreams(fmtSource)

		cmd := &JSON{Indent: tt.indent, Input: Input{Sources: []string{"-"}}}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("indent %d: Run() error = %v", tt.indent, err)
		}

		if out.String() != tt.want {
			t.Errorf("indent %d: stdout = %q, want %q", tt.indent, out.String(), tt.want)
		}
	}
}

func TestYAMLRun(t *testing.T) {
	for _, indent := range []int{0, 4} {
		ctx, out, _ := testStreams(fmtSource)

		cmd := &YAML{Indent: indent, Input: Input{Sources: []string{"-"}}}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("indent %d: Run() error = %v", indent, err)
		}

		var got map[string]string
		if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("indent %d: output %q is not YAML: %v", indent, out.String(), err)
		}

		if got["accent"] != "#89b4fa" || got["base"] != "#1e1e2e" || len(got) != 2 {
			t.Errorf("indent %d: got %v", indent, got)
		}
	}
}

func TestSwatchRun(t *testing.T) {
	ctx, out, _ := testStreams(fmtSource)

	cmd := &Swatch{Input{Sources: []string{"-"}, Where: `name == "base"`}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.HasSuffix(out.String(), " #1e1e2e base\n") ||
		strings.Contains(out.String(), "accent") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestFmtRun_Strict(t *testing.T) {
	ctx, out, _ := testStreams(fmtSource)

	cmd := &YAML{Indent: 2, Input: Input{Sources: []string{"-"}, Strict: true}}

	err := cmd.Run(ctx)
	if !errors.Is(err, ErrFaults) {
		t.Errorf("Run() error = %v, want %v", err, ErrFaults)
	}

	if out.Len() == 0 {
		t.Error("output was not written before failing")
	}
}
