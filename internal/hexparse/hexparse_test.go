package hexparse

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "single cluster",
			input: "0",
			want:  []string{"0"},
		},
		{
			name:  "odd length leaves short last token",
			input: "068",
			want:  []string{"06", "8"},
		},
		{
			name:  "six digits",
			input: "0089ff",
			want:  []string{"00", "89", "ff"},
		},
		{
			name:  "trailing input ignored",
			input: "0089ffcc00",
			want:  []string{"00", "89", "ff"},
		},
		{
			name:  "multibyte clusters count as one position",
			input: "üçø",
			want:  []string{"üç", "ø"},
		},
		{
			name:  "combining mark stays in its cluster",
			input: "0́089ff",
			want:  []string{"0́0", "89", "ff"},
		},
		{
			name:  "emoji",
			input: "🎨🎨🎨🎨🎨🎨🎨",
			want:  []string{"🎨🎨", "🎨🎨", "🎨🎨"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestByte(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want uint8
	}{
		{name: "zero", tok: "00", want: 0},
		{name: "max", tok: "ff", want: 255},
		{name: "uppercase", tok: "FF", want: 255},
		{name: "mixed value", tok: "89", want: 137},
		{name: "non-hex decodes to zero", tok: "zz", want: 0},
		{name: "single digit decodes to zero", tok: "8", want: 0},
		{name: "empty decodes to zero", tok: "", want: 0},
		{name: "multibyte decodes to zero", tok: "é0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Byte(tt.tok); got != tt.want {
				t.Errorf("Byte(%q) = %d, want %d", tt.tok, got, tt.want)
			}
		})
	}
}
