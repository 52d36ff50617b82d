package repl

import (
	"slices"
	"strings"
	"testing"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		want   functionCall
	}{
		{"no_call", "let a = b", 9, functionCall{}},
		{"first_arg", "let a = rgb(", 12, functionCall{name: "rgb", argIndex: 0, inCall: true}},
		{"third_arg", "let a = rgb(1, 2, ", 18, functionCall{name: "rgb", argIndex: 2, inCall: true}},
		{"nested_inner", "let a = plus(rgb(1, ", 20, functionCall{name: "rgb", argIndex: 1, inCall: true}},
		{"nested_outer", "let a = plus(rgb(1, 2, 3), ", 27, functionCall{name: "plus", argIndex: 1, inCall: true}},
		{"closed", "let a = rgb(1, 2, 3)", 20, functionCall{}},
		{"previous_statement", "let a = rgb(1; let b = ", 23, functionCall{}},
		{"anonymous_paren", "(", 1, functionCall{}},
		{"cursor_past_end", "rgb(1", 99, functionCall{name: "rgb", argIndex: 0, inCall: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFunctionCall(tt.input, tt.cursor); got != tt.want {
				t.Errorf("detectFunctionCall(%q, %d) = %+v, want %+v",
					tt.input, tt.cursor, got, tt.want)
			}
		})
	}
}

func TestGetSignature(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		params    []string
	}{
		{"rgb", "rgb(r, g, b)", []string{"r", "g", "b"}},
		{"plus", "plus(color, r, g, b)", []string{"color", "r", "g", "b"}},
		{"minus", "minus(color, r, g, b)", []string{"color", "r", "g", "b"}},
		{"accent", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, params := getSignature(tt.name)
			if sig != tt.signature || !slices.Equal(params, tt.params) {
				t.Errorf("getSignature(%q) = %q %v, want %q %v",
					tt.name, sig, params, tt.signature, tt.params)
			}
		})
	}
}

func TestRenderSignatureHint(t *testing.T) {
	if got := renderSignatureHint("", nil, 0); got != "" {
		t.Errorf("empty signature rendered %q", got)
	}

	sig, params := getSignature("plus")

	hint := renderSignatureHint(sig, params, 1)
	for _, want := range []string{"plus", "color", "r", "g", "b"} {
		if !strings.Contains(hint, want) {
			t.Errorf("hint %q does not contain %q", hint, want)
		}
	}
}
