// Package clipboard copies shortcut notations to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/renato0307/keyhelp/internal/logging"
)

// System writes to the OS clipboard through atotto/clipboard.
type System struct {
	write func(string) error
}

// New returns a System clipboard.
func New() *System {
	return &System{write: clipboard.WriteAll}
}

// Copy puts text on the clipboard.
func (s *System) Copy(text string) error {
	if err := s.write(text); err != nil {
		logging.Warn("clipboard write failed", "error", err)
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Debug("copied to clipboard", "text", text)
	return nil
}

// Memory is an in-process clipboard for tests. Err makes every Copy fail.
type Memory struct {
	Text string
	Err  error
}

// Copy stores text, or fails with Err when it is set.
func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", m.Err)
	}
	m.Text = text
	return nil
}
