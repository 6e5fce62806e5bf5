// Package recommend orders and groups recommendation records for display.
package recommend

import (
	"sort"
	"strings"
)

// Importance is the optional tier attached to a recommendation.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// DefaultCategory labels recommendations that carry no category of their own.
const DefaultCategory = "Generelt"

// Recommendation is one actionable suggestion shown to the user.
type Recommendation struct {
	Text        string     `json:"text"`
	Category    string     `json:"category,omitempty"`
	Importance  Importance `json:"importance,omitempty"`
	Explanation string     `json:"explanation,omitempty"`
}

func importanceRank(value Importance) int {
	switch value {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	case ImportanceLow:
		return 1
	default:
		return 0
	}
}

// Rank returns a new slice sorted descending by importance tier. The sort is
// stable: equal-tier recommendations keep their input order.
func Rank(recs []Recommendation) []Recommendation {
	out := append([]Recommendation(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		return importanceRank(out[i].Importance) > importanceRank(out[j].Importance)
	})
	return out
}

// Group is one category with its recommendations in input order.
type Group struct {
	Category        string           `json:"category"`
	Recommendations []Recommendation `json:"recommendations"`
}

// GroupByCategory buckets recommendations by category, substituting
// DefaultCategory for absent or blank categories. Groups appear in
// first-occurrence order of the input.
func GroupByCategory(recs []Recommendation) []Group {
	order := make([]string, 0, len(recs))
	grouped := make(map[string][]Recommendation, len(recs))

	for _, rec := range recs {
		cat := strings.TrimSpace(rec.Category)
		if cat == "" {
			cat = DefaultCategory
		}
		if _, ok := grouped[cat]; !ok {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], rec)
	}

	out := make([]Group, 0, len(order))
	for _, cat := range order {
		out = append(out, Group{Category: cat, Recommendations: grouped[cat]})
	}
	return out
}

// Completed is the set of recommendation texts the user has checked off.
// The literal text is the key, so two recommendations sharing identical
// text are indistinguishable once one is marked complete. That matches the
// historical behavior and stays until a stable ID exists upstream.
type Completed map[string]struct{}

// Toggle returns a copy of the set with key flipped. The receiver is never
// mutated.
func (c Completed) Toggle(key string) Completed {
	out := make(Completed, len(c)+1)
	for k := range c {
		out[k] = struct{}{}
	}
	if _, ok := out[key]; ok {
		delete(out, key)
	} else {
		out[key] = struct{}{}
	}
	return out
}

// Has reports whether key is marked complete.
func (c Completed) Has(key string) bool {
	_, ok := c[key]
	return ok
}
