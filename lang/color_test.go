package lang

import (
	"errors"
	"testing"
)

func TestColor_PlusMinus(t *testing.T) {
	tests := []struct {
		name    string
		base    Color
		r, g, b uint8
		plus    Color
		minus   Color
	}{
		{
			name:  "small amounts",
			base:  RGB(10, 10, 10),
			r:     10,
			g:     10,
			b:     10,
			plus:  RGB(20, 20, 20),
			minus: RGB(0, 0, 0),
		},
		{
			name:  "saturates high",
			base:  RGB(100, 200, 255),
			r:     100,
			g:     10,
			b:     0,
			plus:  RGB(200, 210, 255),
			minus: RGB(0, 190, 255),
		},
		{
			name:  "saturates low",
			base:  RGB(0, 110, 254),
			r:     1,
			g:     111,
			b:     255,
			plus:  RGB(1, 221, 255),
			minus: RGB(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Plus(tt.r, tt.g, tt.b); got != tt.plus {
				t.Errorf("Plus = %v, want %v", got, tt.plus)
			}

			if got := tt.base.Minus(tt.r, tt.g, tt.b); got != tt.minus {
				t.Errorf("Minus = %v, want %v", got, tt.minus)
			}
		})
	}
}

func TestColor_Saturation_AllChannelValues(t *testing.T) {
	for c := range 256 {
		for d := range 256 {
			base := RGB(uint8(c), uint8(c), uint8(c))

			wantPlus := uint8(min(c+d, 255))
			if got := base.Plus(uint8(d), 0, 0).R; got != wantPlus {
				t.Fatalf("%d plus %d = %d, want %d", c, d, got, wantPlus)
			}

			wantMinus := uint8(max(c-d, 0))
			if got := base.Minus(0, 0, uint8(d)).B; got != wantMinus {
				t.Fatalf("%d minus %d = %d, want %d", c, d, got, wantMinus)
			}
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{input: "#ffffff", want: RGB(255, 255, 255)},
		{input: "#0A0b0C", want: RGB(10, 11, 12)},
		{input: "102030", want: RGB(0x10, 0x20, 0x30)},
		{input: "#fffff", wantErr: true},
		{input: "#fffffff", wantErr: true},
		{input: "#gggggg", wantErr: true},
		{input: "#", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedHex) {
					t.Fatalf("expected ErrMalformedHex, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_String_RoundTrip(t *testing.T) {
	for _, c := range []Color{
		RGB(0, 0, 0),
		RGB(255, 255, 255),
		RGB(0x0a, 0xb0, 0xcd),
		RGB(1, 2, 3),
	} {
		s := c.String()
		if len(s) != 7 || s[0] != '#' {
			t.Fatalf("malformed string %q", s)
		}

		got, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", s, err)
		}

		if got != c {
			t.Errorf("round trip of %v gave %v", c, got)
		}
	}

	if got := RGB(0xAB, 0xCD, 0xEF).String(); got != "#abcdef" {
		t.Errorf("expected lowercase, got %q", got)
	}
}

func TestColor_UnmarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#102030")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c != RGB(0x10, 0x20, 0x30) {
		t.Errorf("got %v", c)
	}

	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error")
	}
}
