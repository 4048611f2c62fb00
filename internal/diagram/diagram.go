// Package diagram paints shortcut frames onto an ASCII keyboard.
//
// Two modes exist. Animation highlights the keys of one frame, styled by
// role (leader, modifier, plain key). Legend shows every frame at once, each
// frame in its own palette colour, plus a one-line summary of the sequence.
// Output is a list of lines made of spans tagged with a Kind; the ui theme
// decides what each Kind looks like.
package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/renato0307/keyhelp/internal/notation"
)

// Mode selects how a sequence is drawn.
type Mode int

const (
	ModeAnimation Mode = iota
	ModeLegend
)

func (m Mode) String() string {
	switch m {
	case ModeLegend:
		return "legend"
	default:
		return "animation"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeLegend {
		return ModeAnimation
	}
	return ModeLegend
}

// ParseMode converts "animation" or "legend" into a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "animation", "anim":
		return ModeAnimation, nil
	case "legend":
		return ModeLegend, nil
	default:
		return ModeAnimation, fmt.Errorf("unknown diagram mode %q (want animation or legend)", name)
	}
}

// Kind is the role of a span, used to pick its style.
type Kind int

const (
	KindNeutral Kind = iota
	KindHighlight
	KindLeader
	KindModifier
	KindFrame
)

// Span is a piece of text with a role. Frame is the frame index for
// KindFrame spans.
type Span struct {
	Text  string
	Kind  Kind
	Frame int
}

// Line is one row of output.
type Line []Span

// String returns the unstyled text of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Diagram is a rendered keyboard. Legend is only set in legend mode.
type Diagram struct {
	Lines   []Line
	Legend  Line
	Shifted bool
}

// Render draws seq in the given mode. In animation mode current selects
// the frame to highlight; an out of range index draws the bare keyboard.
func Render(mode Mode, seq notation.Sequence, current int) Diagram {
	if mode == ModeLegend {
		return Diagram{
			Lines:   Legend(seq),
			Legend:  LegendBar(seq),
			Shifted: seq.HasLabel(notation.LabelShift),
		}
	}

	var frame notation.Frame
	if current >= 0 && current < len(seq) {
		frame = seq[current]
	}
	return Diagram{
		Lines:   Animate(frame),
		Shifted: frame.HasLabel(notation.LabelShift),
	}
}

// Animate highlights the keys of a single frame.
func Animate(frame notation.Frame) []Line {
	kinds := map[string]Kind{}
	for _, k := range frame {
		kinds[strings.ToLower(k.Label)] = keyKind(k)
	}

	return paint(Layout(frame.HasLabel(notation.LabelShift)), func(label string) (Span, bool) {
		kind, ok := resolve(label, kinds)
		return Span{Kind: kind}, ok
	})
}

func keyKind(k notation.Key) Kind {
	lower := strings.ToLower(k.Label)
	switch {
	case k.IsLeader || lower == "space":
		return KindLeader
	case k.IsModifier || modifierLabels[lower]:
		return KindModifier
	default:
		return KindHighlight
	}
}

// Legend colours every key of every frame by the index of its frame. A key
// used by several frames takes the last one.
func Legend(seq notation.Sequence) []Line {
	frames := map[string]int{}
	for i, f := range seq {
		for _, k := range f {
			frames[strings.ToLower(k.Label)] = i
		}
	}

	return paint(Layout(seq.HasLabel(notation.LabelShift)), func(label string) (Span, bool) {
		idx, ok := resolve(label, frames)
		return Span{Kind: KindFrame, Frame: idx}, ok
	})
}

// LegendBar summarises the sequence on one line, e.g. "␣ → F → F".
func LegendBar(seq notation.Sequence) Line {
	line := Line{}
	for i, f := range seq {
		if i > 0 {
			line = append(line, Span{Text: " → "})
		}
		labels := make([]string, len(f))
		for j, k := range f {
			labels[j] = legendLabel(k.Label)
		}
		line = append(line, Span{Text: strings.Join(labels, "+"), Kind: KindFrame, Frame: i})
	}
	return line
}

func legendLabel(label string) string {
	if strings.EqualFold(label, notation.LabelSpace) {
		return "␣"
	}
	if utf8.RuneCountInString(label) == 1 {
		return strings.ToUpper(label)
	}
	return label
}

// paint splits each layout row into cells and styles the labelled ones
// through match. Unmatched cells and borders stay neutral.
func paint(rows []string, match func(label string) (Span, bool)) []Line {
	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		line := Line{}
		for _, c := range splitRow(row) {
			span := Span{Text: c.text}
			if c.label != "" {
				if styled, ok := match(c.label); ok {
					span.Kind = styled.Kind
					span.Frame = styled.Frame
				}
			}
			line = append(line, span)
		}
		lines = append(lines, line)
	}
	return lines
}
