// Package partition splits issue lists into priority and category buckets.
package partition

import "coherence-backend/internal/insight/category"

// Issue is the minimal issue representation the partitioners need.
type Issue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Load int    `json:"load"`
}

// These cut points are the priority screen's own triad and deliberately do
// not coincide with either severity profile.
const (
	highPriorityFloor   = 60
	mediumPriorityFloor = 30
)

// ByPriority holds the three priority buckets.
type ByPriority struct {
	High   []Issue `json:"high"`
	Medium []Issue `json:"medium"`
	Low    []Issue `json:"low"`
}

// ByLoad partitions issues into high (load >= 60), medium (30-59) and low
// (< 30) buckets. The partition is stable: each bucket keeps the relative
// order of the input.
func ByLoad(issues []Issue) ByPriority {
	var out ByPriority
	for _, issue := range issues {
		switch {
		case issue.Load >= highPriorityFloor:
			out.High = append(out.High, issue)
		case issue.Load >= mediumPriorityFloor:
			out.Medium = append(out.Medium, issue)
		default:
			out.Low = append(out.Low, issue)
		}
	}
	return out
}

// CategoryBucket is one category with its issues in input order.
type CategoryBucket struct {
	Category string  `json:"category"`
	Issues   []Issue `json:"issues"`
}

// ByCategory partitions issues by first-match keyword categorization of the
// issue name. Buckets appear in first-occurrence order and each keeps the
// relative order of the input (stable partition, not sorted by load).
func ByCategory(issues []Issue, rules []category.Rule) []CategoryBucket {
	order := make([]string, 0, len(issues))
	buckets := make(map[string][]Issue, len(issues))

	for _, issue := range issues {
		cat := category.FirstMatch(issue.Name, rules, category.IssueCategoryOther)
		if _, ok := buckets[cat]; !ok {
			order = append(order, cat)
		}
		buckets[cat] = append(buckets[cat], issue)
	}

	out := make([]CategoryBucket, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryBucket{Category: cat, Issues: buckets[cat]})
	}
	return out
}
