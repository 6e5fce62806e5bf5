package healthsystems

import (
	"coherence-backend/internal/insight/category"
)

// CategoryGroup is the catalog partitioned under one issue category.
type CategoryGroup struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Service serves the seeded catalog and its derived groupings.
type Service struct {
	items []Item
}

// NewService constructs a Service over the built-in catalog.
func NewService() *Service {
	return &Service{items: Catalog}
}

// All returns every catalog item in seeded order.
func (s *Service) All() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ByCategory groups catalog items by issue category, matching on the area
// name with first-match precedence. Group order follows first appearance.
func (s *Service) ByCategory() []CategoryGroup {
	order := []string{}
	grouped := map[string][]Item{}
	for _, item := range s.items {
		cat := category.FirstMatch(item.Area, category.IssueRules, category.IssueCategoryOther)
		if _, seen := grouped[cat]; !seen {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], item)
	}

	out := make([]CategoryGroup, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryGroup{Category: cat, Items: grouped[cat]})
	}
	return out
}

// Find returns the item whose area matches exactly, if present.
func (s *Service) Find(area string) (Item, bool) {
	for _, item := range s.items {
		if item.Area == area {
			return item, true
		}
	}
	return Item{}, false
}
