// Package catalog holds the shortcut records shown by keyhelp and loads them
// from YAML, either from the embedded LazyVim catalog or from a user file.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/keyhelp/internal/messages"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrEmptyNotation   = errors.New("empty notation")
	ErrMissingCategory = errors.New("missing category")
)

// Item is a single shortcut entry. Items are never modified after loading.
type Item struct {
	Notation    string   `json:"notation"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Mode        Mode     `json:"mode,omitempty"`
}

// rawItem accepts "keys" as an alias of "notation" so catalogs written for
// the older format still load.
type rawItem struct {
	Notation    string    `json:"notation"`
	Keys        string    `json:"keys"`
	Description string    `json:"description"`
	Category    *Category `json:"category"`
	Mode        Mode      `json:"mode"`
}

// Category groups shortcuts by the editor feature they belong to.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryNavigation
	CategorySearch
	CategoryLSP
	CategoryGit
	CategoryBuffer
	CategoryWindow
	CategoryTab
	CategoryCode
	CategoryDebug
	CategoryTerminal
	CategoryUI
	CategoryPlugin
)

var categoryLabels = [...]string{
	CategoryGeneral:    "General",
	CategoryNavigation: "Navigation",
	CategorySearch:     "Search",
	CategoryLSP:        "LSP",
	CategoryGit:        "Git",
	CategoryBuffer:     "Buffer",
	CategoryWindow:     "Window",
	CategoryTab:        "Tab",
	CategoryCode:       "Code",
	CategoryDebug:      "Debug",
	CategoryTerminal:   "Terminal",
	CategoryUI:         "UI",
	CategoryPlugin:     "Plugin",
}

// Categories returns every category in display order.
func Categories() []Category {
	all := make([]Category, len(categoryLabels))
	for i := range categoryLabels {
		all[i] = Category(i)
	}
	return all
}

// Label returns the display label, e.g. "LSP".
func (c Category) Label() string {
	if c < 0 || int(c) >= len(categoryLabels) {
		return "Unknown"
	}
	return categoryLabels[c]
}

func (c Category) String() string {
	return c.Label()
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	for i, label := range categoryLabels {
		if strings.EqualFold(label, strings.TrimSpace(name)) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(c.Label()))
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Mode is the editor mode a shortcut applies in. The zero value is Normal.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeCommand
)

var modeNames = [...]string{
	ModeNormal:  "Normal",
	ModeInsert:  "Insert",
	ModeVisual:  "Visual",
	ModeCommand: "Command",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Unknown"
	}
	return modeNames[m]
}

// ParseMode resolves a mode name case-insensitively. Empty means Normal.
func ParseMode(name string) (Mode, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ModeNormal, nil
	}
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(m.String()))
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Parse decodes a YAML (or JSON) list of shortcut records.
func Parse(data []byte) ([]Item, error) {
	var raw []rawItem
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, messages.WrapError(err, "decoding catalog")
	}

	items := make([]Item, 0, len(raw))
	for i, r := range raw {
		notation := r.Notation
		if notation == "" {
			notation = r.Keys
		}
		if notation == "" {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i+1, r.Description, ErrEmptyNotation)
		}
		if r.Category == nil {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i+1, notation, ErrMissingCategory)
		}
		items = append(items, Item{
			Notation:    notation,
			Description: r.Description,
			Category:    *r.Category,
			Mode:        r.Mode,
		})
	}
	return items, nil
}

// Marshal encodes items in the YAML format Parse reads.
func Marshal(items []Item) ([]byte, error) {
	data, err := yaml.Marshal(items)
	if err != nil {
		return nil, messages.WrapError(err, "encoding catalog")
	}
	return data, nil
}

// Load reads a catalog file from disk.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, messages.WrapError(err, "reading catalog %s", path)
	}
	items, err := Parse(data)
	return items, messages.WrapError(err, "catalog %s", path)
}

// Default returns the embedded LazyVim catalog.
func Default() ([]Item, error) {
	return Parse(defaultCatalog)
}

// FilterByCategory returns the items in the given category, in catalog order.
func FilterByCategory(items []Item, category Category) []Item {
	result := []Item{}
	for _, item := range items {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result
}
