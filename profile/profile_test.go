package profile

import "testing"

func zero() (string, string, bool) { return "", "", false }

func TestConfig_Options(t *testing.T) {
	var cfg Config = zero

	cfg = WithMode("cpu")(cfg)
	cfg = WithPath("/tmp/defiro")(cfg)
	cfg = WithQuiet(true)(cfg)

	mode, path, quiet := cfg()
	if mode != "cpu" || path != "/tmp/defiro" || !quiet {
		t.Errorf("got (%q, %q, %v)", mode, path, quiet)
	}

	// Later options replace only their own field.
	mode, path, quiet = WithMode("heap")(cfg)()
	if mode != "heap" || path != "/tmp/defiro" || !quiet {
		t.Errorf("got (%q, %q, %v)", mode, path, quiet)
	}
}

func TestConfig_Start_EmptyMode(t *testing.T) {
	var cfg Config = zero

	p := WithPath(t.TempDir())(cfg).Start()
	if _, ok := p.(ignore); !ok {
		t.Fatalf("expected no-op profiler, got %T", p)
	}

	p.Stop()
}

func TestEnabled(t *testing.T) {
	if Enabled() != (len(Modes()) > 0) {
		t.Error("Enabled disagrees with Modes")
	}

	for _, m := range Modes() {
		if m == "quiet" {
			t.Error("quiet must not be listed as a mode")
		}
	}
}
