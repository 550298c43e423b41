// Package prompt implements the terminal side of the confirmation and login
// interactions the core asks for through its capabilities.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"lelyo-go/internal/core"
)

// TerminalConfirmer asks yes/no questions on the terminal. Only an explicit
// "y" or "yes" (case-insensitive) counts as approval; anything else declines.
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

var _ core.Confirmer = (*TerminalConfirmer)(nil)

func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// ReadPassword prompts for a password without echoing when stdin is a
// terminal, falling back to a plain line read otherwise (pipes, tests).
func ReadPassword(promptText string) (string, error) {
	fmt.Fprint(os.Stderr, promptText)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
