package cli

import (
	"testing"

	"github.com/ardnew/defiro/log"
)

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "none",
			args: []string{"eval", "a.dfr"},
			want: logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339", Pretty: true},
		},
		{
			name: "separate_values",
			args: []string{"--log-level", "debug", "fmt", "--log-format", "text"},
			want: logConfig{Level: "debug", Format: "text", TimeLayout: "RFC3339", Pretty: true},
		},
		{
			name: "assigned_values",
			args: []string{"--log-level=trace", "--log-time-layout=none"},
			want: logConfig{Level: "trace", Format: "json", TimeLayout: "none", Pretty: true},
		},
		{
			name: "booleans",
			args: []string{"--no-log-pretty", "--log-caller"},
			want: logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339", Caller: true},
		},
		{
			name: "assigned_booleans",
			args: []string{"--log-pretty=false", "--no-log-caller=false", "--log-caller=bogus"},
			want: logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339", Caller: true},
		},
		{
			name: "after_terminator",
			args: []string{"--", "--log-level=error"},
			want: logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339", Pretty: true},
		},
	}

	original := log.Default()
	defer log.Config(
		log.WithLevel(original.Level()),
		log.WithFormat(original.Format()),
		log.WithTimeLayout("RFC3339"),
		log.WithCaller(false),
		log.WithPretty(true),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.Config(log.WithLevel(log.LevelInfo))

			f := logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339", Pretty: true}
			f.scan(tt.args)

			if f != tt.want {
				t.Errorf("scan(%v) = %+v, want %+v", tt.args, f, tt.want)
			}

			if got := log.Default().Level(); got != log.ParseLevel(string(tt.want.Level)) {
				t.Errorf("default logger level = %v, want %v", got, tt.want.Level)
			}
		})
	}
}

func TestLogConfig_Vars(t *testing.T) {
	var f logConfig

	vars := f.vars()
	if vars["logLevelEnum"] != "trace,debug,info,warn,error" {
		t.Errorf("logLevelEnum = %q", vars["logLevelEnum"])
	}

	if vars["logFormatEnum"] != "json,text" {
		t.Errorf("logFormatEnum = %q", vars["logFormatEnum"])
	}
}
