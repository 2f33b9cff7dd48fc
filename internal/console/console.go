// Package console writes status lines that can be redrawn in place.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Manager prints rewritable (dynamic) and permanent lines to w.
type Manager struct {
	w        io.Writer
	enabled  bool
	dynamic  bool
	lastLine int
}

// New returns a Manager writing to w. A disabled Manager prints nothing.
func New(w io.Writer, enabled bool) *Manager {
	return &Manager{w: w, enabled: enabled, dynamic: true}
}

// ForFile returns a Manager for f that only redraws lines when f is a terminal.
func ForFile(f *os.File, enabled bool) *Manager {
	m := New(f, enabled)
	m.dynamic = IsTerminal(f)
	return m
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Clear blanks out the last dynamic line.
func (m *Manager) Clear() {
	if m.lastLine == 0 {
		return
	}
	fmt.Fprint(m.w, "\r"+strings.Repeat(" ", m.lastLine)+"\r")
	m.lastLine = 0
}

// Dynamic prints text over the previous dynamic line without a newline.
func (m *Manager) Dynamic(text string) {
	if !m.enabled || !m.dynamic {
		return
	}

	m.Clear()
	fmt.Fprint(m.w, "\r"+text)
	m.lastLine = len(text)
}

// Permanent clears any dynamic line and prints text followed by a newline.
func (m *Manager) Permanent(text string) {
	if !m.enabled {
		return
	}

	m.Clear()
	fmt.Fprintln(m.w, text)
}

// ReadSecret reads one line from r without echo when r is a terminal.
// The trailing newline is stripped.
func ReadSecret(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok && IsTerminal(f) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", fmt.Errorf("reading from terminal: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
