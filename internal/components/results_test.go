package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keyhelp/internal/catalog"
	"github.com/renato0307/keyhelp/internal/search"
	"github.com/renato0307/keyhelp/internal/ui"
)

func testItems(t *testing.T) []catalog.Item {
	t.Helper()
	items, err := catalog.Default()
	require.NoError(t, err)
	return items
}

func testMatches(t *testing.T, n int) []search.Match {
	t.Helper()
	return search.Rank(testItems(t)[:n], "")
}

// selectedIndex returns the catalog index of the selection. testMatches
// keeps catalog order, so it equals the row.
func selectedIndex(t *testing.T, r *ResultList) int {
	t.Helper()
	m, ok := r.Selected()
	require.True(t, ok)
	return m.Index
}

func TestResultList_Navigation(t *testing.T) {
	r := NewResultList(ui.ThemeCharm())
	r.SetMatches(testMatches(t, 3))

	assert.Equal(t, 0, selectedIndex(t, r))
	r.Next()
	r.Next()
	assert.Equal(t, 2, selectedIndex(t, r))
	r.Next()
	assert.Equal(t, 0, selectedIndex(t, r), "wraps to the top")
	r.Prev()
	assert.Equal(t, 2, selectedIndex(t, r), "wraps to the bottom")
}

func TestResultList_SetMatchesResetsSelection(t *testing.T) {
	r := NewResultList(ui.ThemeCharm())
	r.SetMatches(testMatches(t, 5))
	r.Next()
	r.SetMatches(testMatches(t, 4))
	assert.Equal(t, 0, selectedIndex(t, r))
}

func TestResultList_Empty(t *testing.T) {
	r := NewResultList(ui.ThemeCharm())
	r.SetSize(80, 5)
	r.Next()
	r.Prev()

	_, ok := r.Selected()
	assert.False(t, ok)
	assert.Contains(t, r.View(), "No matching shortcuts")
}

func TestResultList_Window(t *testing.T) {
	tests := []struct {
		name      string
		selected  int
		wantStart int
		wantEnd   int
	}{
		{"top", 0, 0, 5},
		{"middle", 10, 8, 13},
		{"bottom", 19, 15, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResultList(ui.ThemeCharm())
			r.SetMatches(testMatches(t, 20))
			r.SetSize(80, 5)
			for range tt.selected {
				r.Next()
			}

			start, end := r.window()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.GreaterOrEqual(t, tt.selected, start)
			assert.Less(t, tt.selected, end)
		})
	}
}

func TestResultList_View(t *testing.T) {
	r := NewResultList(ui.ThemeCharm())
	r.SetMatches(testMatches(t, 3))
	r.SetSize(100, 3)

	view := r.View()
	first := testItems(t)[0]
	assert.Contains(t, view, first.Notation)
	assert.Contains(t, view, "["+first.Category.Label()+"]")
	assert.Equal(t, r.GetHeight(), len(strings.Split(view, "\n")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abc", 0))
}
