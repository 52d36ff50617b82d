package cli

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alecthomas/kong"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
config:
  log-level: debug
  log_format: text
  log-pretty: false
  width: 3
  ratio: 1.5
  tags: [a, 2]
other:
  log-level: error
`)

	conf, err := parseConfig(data, "config")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "text"}, // underscore form
		{"log-pretty", false},
		{"width", "3"},
		{"ratio", "1.5"},
	}

	for _, tt := range tests {
		got, ok := conf.value(tt.flag)
		if !ok || got != tt.want {
			t.Errorf("value(%q) = %#v, %v; want %#v", tt.flag, got, ok, tt.want)
		}
	}

	tags, _ := conf.value("tags")
	if !slices.Equal(tags.([]any), []any{"a", "2"}) {
		t.Errorf("tags = %#v", tags)
	}

	if _, ok := conf.value("missing"); ok {
		t.Error("missing flag resolved")
	}
}

func TestParseConfig_MissingMapping(t *testing.T) {
	conf, err := parseConfig([]byte("other: {a: 1}\n"), "config")
	if err != nil || len(conf) != 0 {
		t.Errorf("parseConfig = %v, %v", conf, err)
	}

	conf, err = parseConfig([]byte("config: scalar\n"), "config")
	if err != nil || len(conf) != 0 {
		t.Errorf("parseConfig = %v, %v", conf, err)
	}
}

func TestResolve_Loader(t *testing.T) {
	load := resolve("config")

	r, err := load(strings.NewReader("config: [unterminated\n"))
	if err != nil {
		t.Fatalf("malformed document: %v", err)
	}

	if conf, ok := r.(config); !ok || len(conf) != 0 {
		t.Errorf("malformed document resolved to %#v", r)
	}

	readErr := errors.New("boom")
	if _, err := load(iotest.ErrReader(readErr)); !errors.Is(err, readErr) {
		t.Errorf("read error = %v", err)
	}
}

// TestResolve_Kong checks that configured values reach flags through Kong,
// and that the command line wins.
func TestResolve_Kong(t *testing.T) {
	type app struct {
		Level  string `default:"info"`
		Pretty bool   `default:"true" negatable:""`
		Width  int    `default:"1"`
	}

	doc := "config:\n  level: debug\n  pretty: false\n  width: 7\n"

	tests := []struct {
		args   []string
		level  string
		pretty bool
		width  int
	}{
		{nil, "debug", false, 7},
		{[]string{"--level=warn", "--pretty"}, "warn", true, 7},
	}

	for _, tt := range tests {
		var cli app

		conf, err := parseConfig([]byte(doc), "config")
		if err != nil {
			t.Fatal(err)
		}

		parser, err := kong.New(&cli, kong.Resolvers(conf))
		if err != nil {
			t.Fatal(err)
		}

		if _, err := parser.Parse(tt.args); err != nil {
			t.Fatalf("Parse(%v): %v", tt.args, err)
		}

		if cli.Level != tt.level || cli.Pretty != tt.pretty || cli.Width != tt.width {
			t.Errorf("Parse(%v) = %+v", tt.args, cli)
		}
	}
}
