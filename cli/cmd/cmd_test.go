package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeFiles creates the named files under dir and returns dir.
func writeFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

// testStreams returns a context whose commands read stdin from in and write
// to the returned buffers.
func testStreams(in string) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	var out, errs bytes.Buffer

	ctx := WithStreams(context.Background(), Streams{
		In:  strings.NewReader(in),
		Out: &out,
		Err: &errs,
	})

	return ctx, &out, &errs
}

func TestUniqueSources(t *testing.T) {
	dir := writeFiles(t, t.TempDir(), map[string]string{
		"a.dfr": "let a = #000001;",
		"b.dfr": "let b = #000002;",
	})

	a := filepath.Join(dir, "a.dfr")
	b := filepath.Join(dir, "b.dfr")
	link := filepath.Join(dir, "link.dfr")
	missing := filepath.Join(dir, "missing.dfr")

	if err := os.Symlink(a, link); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		sources   []string
		wantFiles []string
		wantStdin bool
	}{
		{"empty", nil, nil, false},
		{"single", []string{a}, []string{a}, false},
		{"ordered", []string{b, a}, []string{b, a}, false},
		{"duplicate", []string{a, b, a}, []string{a, b}, false},
		{"symlink", []string{a, link}, []string{a}, false},
		{"stdin_collapsed", []string{"-", a, "-"}, []string{a}, true},
		{"missing_kept_once", []string{missing, a, missing}, []string{missing, a}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, stdin := uniqueSources(tt.sources)
			if !slices.Equal(files, tt.wantFiles) || stdin != tt.wantStdin {
				t.Errorf("uniqueSources(%v) = %v, %v; want %v, %v",
					tt.sources, files, stdin, tt.wantFiles, tt.wantStdin)
			}
		})
	}
}

func TestUniqueSources_RelativeAbsolute(t *testing.T) {
	dir := writeFiles(t, t.TempDir(), map[string]string{"a.dfr": ""})
	t.Chdir(dir)

	files, _ := uniqueSources([]string{"a.dfr", filepath.Join(dir, "a.dfr"), "./a.dfr"})
	if !slices.Equal(files, []string{"a.dfr"}) {
		t.Errorf("files = %v", files)
	}
}

func TestStreamsFrom_Defaults(t *testing.T) {
	s := streamsFrom(context.Background())
	if s.In != os.Stdin || s.Out != os.Stdout || s.Err != os.Stderr {
		t.Errorf("default streams = %+v", s)
	}
}

func TestInput_Evaluate(t *testing.T) {
	dir := writeFiles(t, t.TempDir(), map[string]string{
		"theme/base.dfr":   "let base = #1e1e2e; let text = #cdd6f4;",
		"theme/accent.dfr": "include base.dfr; let accent = plus(base, 10, 0, 0)",
	})
	t.Chdir(dir)

	ctx, _, errs := testStreams("include theme/accent.dfr; let extra = missing")

	in := Input{Sources: []string{"-", filepath.Join(dir, "theme", "base.dfr")}}

	bindings, faults, err := in.evaluate(ctx)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	var names []string
	for _, b := range bindings {
		names = append(names, b.Name)
	}

	if !slices.Equal(names, []string{"accent", "base", "text"}) {
		t.Errorf("names = %v", names)
	}

	if len(faults) != 1 {
		t.Fatalf("faults = %v", faults)
	}

	if err := in.report(ctx, faults); err != nil {
		t.Errorf("report without --strict: %v", err)
	}

	if got := errs.String(); got != "EvalError: name not found (name=missing)\n" {
		t.Errorf("stderr = %q", got)
	}
}
