// Package search ranks catalog items against a free-text query.
//
// Each item is scored on three fields with sahilm/fuzzy: the description
// (weight 3), the notation (weight 2) and the category label (weight 1).
// The item score is the best weighted field score, not the sum.
package search

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/renato0307/keyhelp/internal/catalog"
	"github.com/renato0307/keyhelp/internal/logging"
)

// Field weights.
const (
	DescriptionWeight = 3
	NotationWeight    = 2
	CategoryWeight    = 1
)

// Match is a ranked catalog item. Index is the item's position in the
// catalog passed to Rank.
type Match struct {
	Index int
	Item  *catalog.Item
	Score int64
}

// field adapts one lower-cased column of the catalog to fuzzy.Source.
type field struct {
	items []catalog.Item
	value func(catalog.Item) string
}

func (f field) String(i int) string {
	return strings.ToLower(f.value(f.items[i]))
}

func (f field) Len() int {
	return len(f.items)
}

var fields = []struct {
	weight int64
	value  func(catalog.Item) string
}{
	{DescriptionWeight, func(it catalog.Item) string { return it.Description }},
	{NotationWeight, func(it catalog.Item) string { return it.Notation }},
	{CategoryWeight, func(it catalog.Item) string { return it.Category.Label() }},
}

// Rank returns the items matching query, best first. An empty query returns
// every item with score 0 in catalog order. Items with equal scores keep
// their catalog order.
func Rank(items []catalog.Item, query string) []Match {
	if query == "" {
		result := make([]Match, len(items))
		for i := range items {
			result[i] = Match{Index: i, Item: &items[i]}
		}
		return result
	}

	query = strings.ToLower(query)
	best := make([]int64, len(items))
	matched := make([]bool, len(items))

	for _, f := range fields {
		for _, m := range fuzzy.FindFrom(query, field{items: items, value: f.value}) {
			score := max(int64(m.Score), 0) * f.weight
			if !matched[m.Index] || score > best[m.Index] {
				best[m.Index] = score
				matched[m.Index] = true
			}
		}
	}

	result := []Match{}
	for i := range items {
		if matched[i] {
			result = append(result, Match{Index: i, Item: &items[i], Score: best[i]})
		}
	}

	slices.SortStableFunc(result, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return result
}

// Engine ranks a fixed catalog and caps the number of results.
type Engine struct {
	items []catalog.Item
	limit int
}

// NewEngine creates an engine over items. A limit of 0 disables the cap.
func NewEngine(items []catalog.Item, limit int) *Engine {
	return &Engine{items: items, limit: limit}
}

// Items returns the catalog the engine ranks.
func (e *Engine) Items() []catalog.Item {
	return e.items
}

// Search ranks the catalog against query and applies the result cap.
func (e *Engine) Search(query string) []Match {
	matches := logging.TimeWithResult("rank catalog", func() []Match {
		return Rank(e.items, query)
	})
	logging.Debug("query ranked", "query", query, "matches", len(matches))

	if e.limit > 0 && len(matches) > e.limit {
		matches = matches[:e.limit]
	}
	return matches
}
