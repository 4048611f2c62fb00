package testutil

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestProgram runs a real Bubble Tea program for end-to-end tests. Input
// is delivered with Send, output is captured in memory.
type TestProgram struct {
	program *tea.Program
	output  *safeBuffer
	done    chan struct{}
	final   tea.Model
	t       *testing.T
}

// safeBuffer guards the output buffer; the renderer writes from its own
// goroutine.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestProgram starts model in the background with the given window size.
// The program is stopped when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	tp := &TestProgram{
		output: &safeBuffer{},
		done:   make(chan struct{}),
		t:      t,
	}
	tp.program = tea.NewProgram(
		model,
		tea.WithInput(nil),
		tea.WithOutput(tp.output),
		tea.WithoutSignalHandler(),
	)

	go func() {
		defer close(tp.done)
		final, err := tp.program.Run()
		if err != nil {
			t.Logf("program error: %v", err)
		}
		tp.final = final
	}()
	t.Cleanup(func() {
		tp.Quit()
		tp.WaitFinished(2 * time.Second)
	})

	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return tp
}

// Send delivers msg and gives the program a moment to process it.
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(20 * time.Millisecond)
}

// Type sends one key message per rune of s.
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key such as tea.KeyDown or tea.KeyCtrlL.
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Output returns everything rendered so far.
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput polls until needle appears in the output.
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// AssertOutput fails the test unless needle appears within timeout.
func (tp *TestProgram) AssertOutput(needle string, timeout time.Duration) {
	tp.t.Helper()
	if !tp.WaitForOutput(needle, timeout) {
		tp.t.Errorf("output does not contain %q\nGot:\n%s", needle, tp.Output())
	}
}

// Quit stops the program.
func (tp *TestProgram) Quit() {
	tp.program.Quit()
}

// WaitFinished waits for Run to return and reports whether it did.
func (tp *TestProgram) WaitFinished(timeout time.Duration) bool {
	select {
	case <-tp.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// FinalModel returns the model Run returned. Call after WaitFinished.
func (tp *TestProgram) FinalModel() tea.Model {
	<-tp.done
	return tp.final
}
