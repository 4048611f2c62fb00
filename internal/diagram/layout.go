package diagram

import (
	"strings"
	"unicode/utf8"
)

var unshiftedLayout = []string{
	"┌───┬──┬──┬──┬──┬──┬──┬──┬──┬──┬────┬───┬────┐",
	"│Esc│F1│F2│F3│F4│F5│F6│F7│F8│F9│ F10│F11│ F12│",
	"├───┴┬─┴┬─┴┬─┴┬─┴┬─┴┬──┬─┴┬─┴┬─┴┬──┬┴─┬─┴┬───┤",
	"│ `  │1 │2 │3 │4 │5 │6 │7 │8 │9 │0 │- │= │Bsp│",
	"├────┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬──┤",
	"│Tab  │q │w │e │r │t │y │u │i │o │p │[ │] │\\ │",
	"├─────┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴──┤",
	"│Caps  │a │s │d │f │g │h │j │k │l │; │' │Ent │",
	"├──────┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴────┤",
	"│Shift  │z │x │c │v │b │n │m │, │. │/ │Shift │",
	"├────┬──┴┬─┴─┬┴──┴──┴──┴──┴──┴┬─┴─┬┴──┬───┬──┤",
	"│Ctrl│Sup│Alt│      Space     │Alt│Fn │Mnu│Ct│",
	"└────┴───┴───┴────────────────┴───┴───┴───┴──┘",
}

var shiftedLayout = []string{
	"┌───┬──┬──┬──┬──┬──┬──┬──┬──┬──┬────┬───┬────┐",
	"│Esc│F1│F2│F3│F4│F5│F6│F7│F8│F9│ F10│F11│ F12│",
	"├───┴┬─┴┬─┴┬─┴┬─┴┬─┴┬──┬─┴┬─┴┬─┴┬──┬┴─┬─┴┬───┤",
	"│ ~  │! │@ │# │$ │% │^ │& │* │( │) │_ │+ │Bsp│",
	"├────┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬──┤",
	"│Tab  │Q │W │E │R │T │Y │U │I │O │P │{ │} │| │",
	"├─────┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴──┤",
	"│Caps  │A │S │D │F │G │H │J │K │L │: │\" │Ent │",
	"├──────┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴┬─┴────┤",
	"│Shift  │Z │X │C │V │B │N │M │< │> │? │Shift │",
	"├────┬──┴┬─┴─┬┴──┴──┴──┴──┴──┴┬─┴─┬┴──┬───┬──┤",
	"│Ctrl│Sup│Alt│      Space     │Alt│Fn │Mnu│Ct│",
	"└────┴───┴───┴────────────────┴───┴───┴───┴──┘",
}

// aliases maps abbreviated key cap labels to the labels the parser
// produces, in both directions.
var aliases = map[string]string{
	"bsp":    "backsp",
	"backsp": "bsp",
	"ent":    "enter",
	"enter":  "ent",
	"ct":     "ctrl",
	"ctrl":   "ct",
	"mnu":    "menu",
	"menu":   "mnu",
	"sup":    "super",
	"super":  "sup",
}

// counterparts pairs the two glyphs printed on the same key, e.g. ";" and ":".
var counterparts = buildCounterparts()

var modifierLabels = map[string]bool{
	"ctrl":  true,
	"alt":   true,
	"shift": true,
	"super": true,
}

func isBorder(r rune) bool {
	switch r {
	case '│', '┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼', '─':
		return true
	}
	return false
}

// Layout returns the keyboard rows for the given shift state.
func Layout(shifted bool) []string {
	if shifted {
		return append([]string(nil), shiftedLayout...)
	}
	return append([]string(nil), unshiftedLayout...)
}

// cell is a run of text on a layout row. Border runs have no label.
type cell struct {
	text   string
	label  string
	border bool
}

// splitRow cuts a layout row into border runs and key cap cells.
func splitRow(row string) []cell {
	var cells []cell
	var b strings.Builder
	inBorder := false

	flush := func() {
		if b.Len() == 0 {
			return
		}
		text := b.String()
		c := cell{text: text, border: inBorder}
		if !inBorder {
			c.label = strings.TrimSpace(text)
		}
		cells = append(cells, c)
		b.Reset()
	}

	for _, r := range row {
		if isBorder(r) != inBorder {
			flush()
			inBorder = !inBorder
		}
		b.WriteRune(r)
	}
	flush()
	return cells
}

func buildCounterparts() map[string]string {
	pairs := map[string]string{}
	for i := range unshiftedLayout {
		plain := splitRow(unshiftedLayout[i])
		shifted := splitRow(shiftedLayout[i])
		for j := range min(len(plain), len(shifted)) {
			a := strings.ToLower(plain[j].label)
			b := strings.ToLower(shifted[j].label)
			if a == b || utf8.RuneCountInString(a) != 1 || utf8.RuneCountInString(b) != 1 {
				continue
			}
			pairs[a] = b
			pairs[b] = a
		}
	}
	return pairs
}

// resolve finds the entry of keys that a key cap label stands for: an exact
// case-insensitive match first, then the alias table, then the other glyph
// printed on a single-character key.
func resolve[V any](label string, keys map[string]V) (V, bool) {
	lower := strings.ToLower(label)
	if v, ok := keys[lower]; ok {
		return v, true
	}
	if alias, ok := aliases[lower]; ok {
		if v, ok := keys[alias]; ok {
			return v, true
		}
	}
	if utf8.RuneCountInString(lower) == 1 {
		if other, ok := counterparts[lower]; ok {
			if v, ok := keys[other]; ok {
				return v, true
			}
		}
	}
	var zero V
	return zero, false
}
