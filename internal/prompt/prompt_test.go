package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"lelyo-go/internal/prompt"
)

func TestTerminalConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase Y", "Y\n", true},
		{"mixed-case YES", "YeS\n", true},
		{"padded answer", "  y  \n", true},
		{"n", "n\n", false},
		{"empty line defaults to no", "\n", false},
		{"garbage", "maybe\n", false},
		{"eof without newline", "y", true},
		{"immediate eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := prompt.NewTerminalConfirmer(strings.NewReader(tt.input), &out)

			got, err := c.Confirm("Delete property \"Villa Azur\"?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt output = %q, want the [y/N] marker", out.String())
			}
		})
	}
}

func TestTerminalConfirmerEchoesPrompt(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewTerminalConfirmer(strings.NewReader("n\n"), &out)

	if _, err := c.Confirm("Delete reservation 7?"); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "Delete reservation 7?") {
		t.Errorf("output = %q, want it to start with the question", out.String())
	}
}
