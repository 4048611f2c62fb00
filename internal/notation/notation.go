// Package notation turns shortcut strings such as "<leader>ff" or "<C-w>v"
// into the sequence of key chords a user has to press.
//
// Parsing never fails. Unterminated or unknown special tokens are passed
// through as literal key labels.
package notation

import (
	"strings"
)

// Key is a single key on the keyboard.
type Key struct {
	Label      string
	IsModifier bool
	IsLeader   bool
}

// Frame is the set of keys pressed at the same time.
type Frame []Key

// Sequence is the ordered list of frames a shortcut expands to.
type Sequence []Frame

// Well-known labels produced by the parser.
const (
	LabelSpace  = "Space"
	LabelEnter  = "Enter"
	LabelEsc    = "Esc"
	LabelBacksp = "Backsp"
	LabelTab    = "Tab"
	LabelCtrl   = "Ctrl"
	LabelShift  = "Shift"
	LabelAlt    = "Alt"
)

var specialKeys = map[string]string{
	"leader":    LabelSpace,
	"space":     LabelSpace,
	"cr":        LabelEnter,
	"enter":     LabelEnter,
	"return":    LabelEnter,
	"esc":       LabelEsc,
	"escape":    LabelEsc,
	"bs":        LabelBacksp,
	"backspace": LabelBacksp,
	"tab":       LabelTab,
}

var directionKeys = map[string]string{
	"up":    "Up",
	"down":  "Down",
	"left":  "Left",
	"right": "Right",
}

var modifierKeys = map[string]string{
	"c":       LabelCtrl,
	"ctrl":    LabelCtrl,
	"control": LabelCtrl,
	"s":       LabelShift,
	"shift":   LabelShift,
	"a":       LabelAlt,
	"alt":     LabelAlt,
	"m":       LabelAlt,
	"meta":    LabelAlt,
}

// Parse converts a shortcut notation into its frame sequence.
func Parse(notation string) Sequence {
	var seq Sequence
	runes := []rune(notation)

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '<':
			end := i + 1
			for end < len(runes) && runes[end] != '>' {
				end++
			}
			seq = append(seq, parseToken(string(runes[i+1:end])))
			// end is either the closing '>' or len(runes)
			i = end
		case c == '-' || c == '+':
			// display separator
		case c >= 'A' && c <= 'Z':
			seq = append(seq, Frame{
				{Label: LabelShift, IsModifier: true},
				{Label: string(c - 'A' + 'a')},
			})
		default:
			seq = append(seq, Frame{{Label: string(c)}})
		}
	}

	return seq
}

// parseToken handles the body of a <...> token.
func parseToken(body string) Frame {
	if body == "" {
		return Frame{{Label: "<>"}}
	}

	parts := strings.Split(body, "-")
	if len(parts) == 1 {
		return Frame{simpleKey(body)}
	}

	mods, target := parts[:len(parts)-1], parts[len(parts)-1]
	if target == "" {
		// "<C-->" names the minus key itself
		target = "-"
		if mods[len(mods)-1] == "" {
			mods = mods[:len(mods)-1]
		}
	}

	frame := Frame{}
	for _, p := range mods {
		if label, ok := modifierKeys[strings.ToLower(p)]; ok {
			frame = append(frame, Key{Label: label, IsModifier: true})
		}
	}
	return append(frame, targetKey(target))
}

func simpleKey(name string) Key {
	lower := strings.ToLower(name)
	if label, ok := specialKeys[lower]; ok {
		return Key{Label: label, IsLeader: label == LabelSpace}
	}
	return Key{Label: name}
}

func targetKey(name string) Key {
	lower := strings.ToLower(name)
	if label, ok := specialKeys[lower]; ok {
		return Key{Label: label, IsLeader: label == LabelSpace}
	}
	if label, ok := directionKeys[lower]; ok {
		return Key{Label: label}
	}
	return Key{Label: lower}
}

// Labels returns the key labels of the frame in display order.
func (f Frame) Labels() []string {
	labels := make([]string, len(f))
	for i, k := range f {
		labels[i] = k.Label
	}
	return labels
}

// HasLabel reports whether the frame contains a key with the given label,
// compared case-insensitively.
func (f Frame) HasLabel(label string) bool {
	for _, k := range f {
		if strings.EqualFold(k.Label, label) {
			return true
		}
	}
	return false
}

func (f Frame) String() string {
	return strings.Join(f.Labels(), "+")
}

// Labels returns the labels of every frame.
func (s Sequence) Labels() [][]string {
	labels := make([][]string, len(s))
	for i, f := range s {
		labels[i] = f.Labels()
	}
	return labels
}

// HasLabel reports whether any frame contains the label.
func (s Sequence) HasLabel(label string) bool {
	for _, f := range s {
		if f.HasLabel(label) {
			return true
		}
	}
	return false
}

// String renders the sequence as "Space, f, f" style text.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
