// Package aggregate folds raw scanner components into per-system load
// summaries for the system-load bars.
package aggregate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"coherence-backend/internal/insight/category"
	"coherence-backend/internal/insight/severity"
)

// Component is one raw scanner measurement.
type Component struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
}

// SystemSummary is the derived per-system load. It has no identity of its
// own; it is recomputed on every read.
type SystemSummary struct {
	Key   string         `json:"key"`
	Name  string         `json:"name"`
	Value int            `json:"value"`
	Color severity.Color `json:"color"`
}

// SystemLoads groups components by body system and returns one summary per
// system, sorted descending by value. Ties keep the order in which each
// system first appeared during accumulation, so the result is deterministic
// for identical input. Empty input yields an empty slice.
func SystemLoads(components []Component) []SystemSummary {
	// Insertion-ordered accumulation: a bare map would make tie order
	// depend on runtime map iteration.
	keys := make([]string, 0, len(components))
	levels := make(map[string][]float64, len(components))

	for _, comp := range components {
		key := category.LastMatch(comp.Category, category.SystemRules, category.SystemOther)
		if _, ok := levels[key]; !ok {
			keys = append(keys, key)
		}
		levels[key] = append(levels[key], float64(comp.Level))
	}

	out := make([]SystemSummary, 0, len(keys))
	for _, key := range keys {
		value := int(math.Round(stat.Mean(levels[key], nil)))
		out = append(out, SystemSummary{
			Key:   key,
			Name:  category.SystemDisplayName(key),
			Value: value,
			Color: severity.Classify(value, severity.SystemThresholds).Color,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// TopSystems truncates summaries to at most n entries. The descending order
// (and its tie behavior) comes from SystemLoads.
func TopSystems(summaries []SystemSummary, n int) []SystemSummary {
	if n < 0 {
		n = 0
	}
	if len(summaries) <= n {
		return summaries
	}
	return summaries[:n]
}
