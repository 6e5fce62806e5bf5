package partition

import (
	"reflect"
	"testing"

	"coherence-backend/internal/insight/category"
)

func issueNames(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Name)
	}
	return out
}

func TestByLoadExample(t *testing.T) {
	issues := []Issue{
		{Name: "a", Load: 65},
		{Name: "b", Load: 45},
		{Name: "c", Load: 20},
	}
	got := ByLoad(issues)
	if len(got.High) != 1 || got.High[0].Name != "a" {
		t.Fatalf("high = %+v", got.High)
	}
	if len(got.Medium) != 1 || got.Medium[0].Name != "b" {
		t.Fatalf("medium = %+v", got.Medium)
	}
	if len(got.Low) != 1 || got.Low[0].Name != "c" {
		t.Fatalf("low = %+v", got.Low)
	}
}

func TestByLoadBoundaries(t *testing.T) {
	got := ByLoad([]Issue{{Name: "sixty", Load: 60}, {Name: "thirty", Load: 30}, {Name: "twentynine", Load: 29}})
	if len(got.High) != 1 || got.High[0].Name != "sixty" {
		t.Fatalf("load 60 should be high, got %+v", got)
	}
	if len(got.Medium) != 1 || got.Medium[0].Name != "thirty" {
		t.Fatalf("load 30 should be medium, got %+v", got)
	}
	if len(got.Low) != 1 || got.Low[0].Name != "twentynine" {
		t.Fatalf("load 29 should be low, got %+v", got)
	}
}

func TestByLoadIsStablePermutation(t *testing.T) {
	issues := []Issue{
		{ID: "1", Name: "x", Load: 80},
		{ID: "2", Name: "y", Load: 10},
		{ID: "3", Name: "z", Load: 70},
		{ID: "4", Name: "w", Load: 40},
		{ID: "5", Name: "v", Load: 5},
	}
	got := ByLoad(issues)

	if want := []string{"x", "z"}; !reflect.DeepEqual(issueNames(got.High), want) {
		t.Fatalf("high order = %v, want %v", issueNames(got.High), want)
	}
	if want := []string{"y", "v"}; !reflect.DeepEqual(issueNames(got.Low), want) {
		t.Fatalf("low order = %v, want %v", issueNames(got.Low), want)
	}

	total := len(got.High) + len(got.Medium) + len(got.Low)
	if total != len(issues) {
		t.Fatalf("buckets hold %d issues, input had %d", total, len(issues))
	}
	seen := map[string]bool{}
	for _, bucket := range [][]Issue{got.High, got.Medium, got.Low} {
		for _, issue := range bucket {
			if seen[issue.ID] {
				t.Fatalf("issue %s appears in more than one bucket", issue.ID)
			}
			seen[issue.ID] = true
		}
	}
}

func TestByCategory(t *testing.T) {
	issues := []Issue{
		{Name: "Tarmflora i ubalanse", Load: 55},
		{Name: "Stressrespons", Load: 70},
		{Name: "Mageslimhinne", Load: 30},
		{Name: "Helt ukjent plage", Load: 10},
	}

	got := ByCategory(issues, category.IssueRules)
	if len(got) != 3 {
		t.Fatalf("expected 3 buckets, got %d: %+v", len(got), got)
	}
	if got[0].Category != category.IssueCategoryDigestive {
		t.Fatalf("first bucket should follow first occurrence, got %q", got[0].Category)
	}
	if want := []string{"Tarmflora i ubalanse", "Mageslimhinne"}; !reflect.DeepEqual(issueNames(got[0].Issues), want) {
		t.Fatalf("digestive bucket order = %v, want %v", issueNames(got[0].Issues), want)
	}
	if got[1].Category != category.IssueCategoryNervous {
		t.Fatalf("second bucket = %q", got[1].Category)
	}
	if got[2].Category != category.IssueCategoryOther {
		t.Fatalf("unmatched issue should land in %q, got %q", category.IssueCategoryOther, got[2].Category)
	}
}

func TestByCategoryEmptyInput(t *testing.T) {
	if got := ByCategory(nil, category.IssueRules); len(got) != 0 {
		t.Fatalf("ByCategory(nil) = %+v, want empty", got)
	}
}
