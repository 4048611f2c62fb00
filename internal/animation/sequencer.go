// Package animation steps through the frames of a shortcut over time.
package animation

import (
	"time"

	"github.com/renato0307/keyhelp/internal/notation"
)

// FrameDuration is how long each frame stays on screen.
const FrameDuration = 500 * time.Millisecond

// NoSelection is the selection value of an idle sequencer.
const NoSelection = -1

// Sequencer is a two-state machine: idle (nothing selected or an empty
// sequence) or displaying one frame of the selected sequence. It is driven
// by explicit Tick calls and never reads the clock itself.
type Sequencer struct {
	frames    notation.Sequence
	index     int
	elapsed   time.Duration
	selection int
}

// NewSequencer returns an idle sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{selection: NoSelection}
}

// SelectionChanged starts the given frames from the first one. selection is
// the catalog position of the newly selected item.
func (s *Sequencer) SelectionChanged(selection int, frames notation.Sequence) {
	s.selection = selection
	s.frames = frames
	s.index = 0
	s.elapsed = 0
}

// Clear drops the selection and returns to idle.
func (s *Sequencer) Clear() {
	s.SelectionChanged(NoSelection, nil)
}

// Tick adds delta to the elapsed time and moves to the next frame once
// FrameDuration has passed. At most one frame is advanced per call. It
// reports whether the frame changed.
func (s *Sequencer) Tick(delta time.Duration) bool {
	s.elapsed += delta
	if len(s.frames) == 0 || s.elapsed < FrameDuration {
		return false
	}
	s.index = (s.index + 1) % len(s.frames)
	s.elapsed = 0
	return true
}

// Idle reports whether there is nothing to animate.
func (s *Sequencer) Idle() bool {
	return len(s.frames) == 0
}

// Selection returns the catalog position of the animated item, or
// NoSelection.
func (s *Sequencer) Selection() int {
	return s.selection
}

// Index returns the current frame index, 0 when idle.
func (s *Sequencer) Index() int {
	return s.index
}

// Frames returns the sequence being animated.
func (s *Sequencer) Frames() notation.Sequence {
	return s.frames
}

// Current returns the frame on screen, nil when idle.
func (s *Sequencer) Current() notation.Frame {
	if s.Idle() {
		return nil
	}
	return s.frames[s.index]
}

// Elapsed returns the time accumulated since the last advance.
func (s *Sequencer) Elapsed() time.Duration {
	return s.elapsed
}
