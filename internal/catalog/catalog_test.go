package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	items, err := Default()
	require.NoError(t, err)
	assert.Greater(t, len(items), 50)

	// Every category in the embedded catalog has at least one entry
	seen := map[Category]bool{}
	for _, item := range items {
		assert.NotEmpty(t, item.Notation)
		assert.NotEmpty(t, item.Description)
		seen[item.Category] = true
	}
	for _, c := range Categories() {
		if c == CategoryGeneral || c == CategoryPlugin {
			continue
		}
		assert.True(t, seen[c], "no entry for category %s", c)
	}
	assert.Equal(t, "<leader>ff", items[0].Notation)
}

func TestParse(t *testing.T) {
	data := []byte(`
- notation: '<leader>gg'
  description: Open LazyGit
  category: git
- keys: 'jk'
  description: Exit insert mode
  category: general
  mode: insert
- notation: 'K'
  description: Hover
  category: LSP
`)

	items, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, Item{
		Notation:    "<leader>gg",
		Description: "Open LazyGit",
		Category:    CategoryGit,
		Mode:        ModeNormal,
	}, items[0])
	assert.Equal(t, "jk", items[1].Notation, "keys is accepted as an alias of notation")
	assert.Equal(t, ModeInsert, items[1].Mode)
	assert.Equal(t, CategoryLSP, items[2].Category)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown category",
			data:    "- notation: 'x'\n  description: d\n  category: cooking\n",
			wantErr: "unknown category",
		},
		{
			name:    "unknown mode",
			data:    "- notation: 'x'\n  description: d\n  category: git\n  mode: replace\n",
			wantErr: "unknown mode",
		},
		{
			name:    "empty notation",
			data:    "- description: d\n  category: git\n",
			wantErr: "empty notation",
		},
		{
			name:    "missing category",
			data:    "- notation: 'x'\n  description: d\n",
			wantErr: "missing category",
		},
		{
			name:    "null category",
			data:    "- notation: 'x'\n  description: d\n  category:\n",
			wantErr: "missing category",
		},
		{
			name:    "not a list",
			data:    "notation: x\n",
			wantErr: "decoding catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- notation: 'gd'\n  description: Goto definition\n  category: lsp\n"), 0o644))

	items, err := Load(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, CategoryLSP, items[0].Category)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- notation: 'gd'\n  description: Goto definition\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCategory)
	assert.Contains(t, err.Error(), "catalog "+path+": ")
}

func TestCategoryLabels(t *testing.T) {
	assert.Len(t, Categories(), 13)
	assert.Equal(t, "LSP", CategoryLSP.Label())
	assert.Equal(t, "UI", CategoryUI.Label())
	assert.Equal(t, "Unknown", Category(99).Label())

	c, err := ParseCategory("terminal")
	require.NoError(t, err)
	assert.Equal(t, CategoryTerminal, c)

	_, err = ParseCategory("nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"", ModeNormal},
		{"normal", ModeNormal},
		{"Insert", ModeInsert},
		{"VISUAL", ModeVisual},
		{"command", ModeCommand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMode("replace")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestFilterByCategory(t *testing.T) {
	items := []Item{
		{Notation: "gd", Category: CategoryLSP},
		{Notation: "<leader>gg", Category: CategoryGit},
		{Notation: "K", Category: CategoryLSP},
	}

	lsp := FilterByCategory(items, CategoryLSP)
	require.Len(t, lsp, 2)
	assert.Equal(t, "gd", lsp[0].Notation)
	assert.Equal(t, "K", lsp[1].Notation)
	assert.Empty(t, FilterByCategory(items, CategoryDebug))
}

func TestMarshal_ParsesBack(t *testing.T) {
	items, err := Default()
	require.NoError(t, err)

	data, err := Marshal(items)
	require.NoError(t, err)
	assert.Contains(t, string(data), "category: search")
	assert.Contains(t, string(data), "mode: insert")
	assert.NotContains(t, string(data), "mode: normal")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, items, again)
}
