package aggregate

import (
	"reflect"
	"testing"

	"coherence-backend/internal/insight/severity"
)

func TestSystemLoadsEmptyInput(t *testing.T) {
	if got := SystemLoads(nil); len(got) != 0 {
		t.Fatalf("SystemLoads(nil) = %v, want empty", got)
	}
}

func TestSystemLoadsExample(t *testing.T) {
	components := []Component{
		{Category: "Nervesystem", Name: "Vagus", Level: 50},
		{Category: "Nervesystem", Name: "Ryggmarg", Level: 70},
		{Category: "Fordøyelse", Name: "Tarm", Level: 20},
	}

	got := SystemLoads(components)
	want := []SystemSummary{
		{Key: "nervesystem", Name: "Nervesystem", Value: 60, Color: severity.ColorYellow},
		{Key: "fordøyelsessystem", Name: "Fordøyelsessystem", Value: 20, Color: severity.ColorGreen},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SystemLoads = %+v, want %+v", got, want)
	}
}

func TestSystemLoadsRoundsMean(t *testing.T) {
	components := []Component{
		{Category: "Hormoner", Level: 33},
		{Category: "Hormoner", Level: 34},
	}
	got := SystemLoads(components)
	if len(got) != 1 || got[0].Value != 34 {
		t.Fatalf("expected rounded mean 34, got %+v", got)
	}
}

func TestSystemLoadsUnknownCategoryBucketsAsOther(t *testing.T) {
	got := SystemLoads([]Component{{Category: "Ukjent felt", Level: 80}})
	if len(got) != 1 || got[0].Key != "annet" || got[0].Name != "Annet" {
		t.Fatalf("expected 'annet' bucket, got %+v", got)
	}
	if got[0].Color != severity.ColorRed {
		t.Fatalf("value 80 should be red under system thresholds, got %s", got[0].Color)
	}
}

func TestSystemLoadsTieOrderFollowsAccumulation(t *testing.T) {
	components := []Component{
		{Category: "Respirasjon", Level: 50},
		{Category: "Sirkulasjon", Level: 50},
		{Category: "Muskulatur", Level: 50},
	}
	got := SystemLoads(components)
	order := make([]string, 0, len(got))
	for _, summary := range got {
		order = append(order, summary.Key)
	}
	want := []string{"respirasjonssystem", "sirkulasjonssystem", "muskelsystem"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("tie order = %v, want accumulation order %v", order, want)
	}
}

func TestSystemLoadsSortedDescending(t *testing.T) {
	components := []Component{
		{Category: "Fordøyelse", Level: 10},
		{Category: "Nervesystem", Level: 90},
		{Category: "Hormoner", Level: 55},
	}
	got := SystemLoads(components)
	for i := 1; i < len(got); i++ {
		if got[i-1].Value < got[i].Value {
			t.Fatalf("not sorted descending: %+v", got)
		}
	}
}

func TestTopSystems(t *testing.T) {
	summaries := SystemLoads([]Component{
		{Category: "Nervesystem", Level: 90},
		{Category: "Hormoner", Level: 80},
		{Category: "Fordøyelse", Level: 70},
	})

	top := TopSystems(summaries, 2)
	if len(top) != 2 || top[0].Key != "nervesystem" || top[1].Key != "hormonsystem" {
		t.Fatalf("TopSystems(2) = %+v", top)
	}
	if got := TopSystems(summaries, 10); len(got) != 3 {
		t.Fatalf("TopSystems larger than input should return all, got %d", len(got))
	}
	if got := TopSystems(summaries, -1); len(got) != 0 {
		t.Fatalf("TopSystems(-1) should be empty, got %d", len(got))
	}
}
