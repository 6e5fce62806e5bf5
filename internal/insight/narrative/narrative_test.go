package narrative

import (
	"strings"
	"testing"
)

func TestDescribeRelationshipCannedPair(t *testing.T) {
	forward := DescribeRelationship("nervesystem", "fordøyelsessystem")
	if !strings.Contains(forward, "vagusnerven") {
		t.Fatalf("expected vagus sentence, got %q", forward)
	}

	reversed := DescribeRelationship("fordøyelsessystem", "nervesystem")
	if reversed != forward {
		t.Fatalf("reverse lookup should return the same sentence; got %q vs %q", reversed, forward)
	}
}

func TestDescribeRelationshipCaseInsensitiveLookup(t *testing.T) {
	got := DescribeRelationship("Nervesystem", "Fordøyelsessystem")
	if !strings.Contains(got, "vagusnerven") {
		t.Fatalf("lookup should lowercase names, got %q", got)
	}
}

func TestDescribeRelationshipFallback(t *testing.T) {
	got := DescribeRelationship("X-Systemet", "Y-Systemet")
	if !strings.Contains(got, "X-Systemet") || !strings.Contains(got, "Y-Systemet") {
		t.Fatalf("fallback must interpolate both names verbatim, got %q", got)
	}
}

func TestSummarizeWithTopIssue(t *testing.T) {
	describe := func(score int) string { return "Kroppen din er i lett ubalanse." }
	issues := []Issue{
		{Name: "Tarmflora", Load: 45},
		{Name: "Stressrespons", Load: 72},
		{Name: "Hormonbalanse", Load: 50},
	}
	got := Summarize(issues, 55, describe)
	if !strings.Contains(got, "stressrespons") {
		t.Fatalf("summary should name the highest-load issue in lowercase, got %q", got)
	}
	if !strings.HasPrefix(got, "Kroppen din er i lett ubalanse.") {
		t.Fatalf("summary should open with the body state, got %q", got)
	}
}

func TestSummarizeEmptyIssues(t *testing.T) {
	got := Summarize(nil, 90, func(int) string { return "Kroppen din er i god balanse." })
	if !strings.Contains(got, "Ingen enkeltområder skiller seg ut") {
		t.Fatalf("empty issue list should use the fixed sentence, got %q", got)
	}
}

func TestSummarizeNilDescriber(t *testing.T) {
	got := Summarize([]Issue{{Name: "Ledd", Load: 30}}, 70, nil)
	if !strings.Contains(got, "ledd") {
		t.Fatalf("summarize should still name the issue, got %q", got)
	}
}
