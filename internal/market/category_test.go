package market

import (
	"testing"

	"pricesuggest/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"iPhone 15 Pro", Electronics},
		{"tủ lạnh Samsung", HomeAppliances},
		{"xe máy Honda Wave", Vehicles},
		{"giày Nike Air Force", Fashion},
		{"căn hộ chung cư 2PN", RealEstate},
		{"nước hoa Chanel", BeautyHealth},
		{"xyz123", Electronics}, // nothing matches, default
		{"", Electronics},
	}

	for _, tt := range tests {
		if got := Detect(tt.name); got != tt.want {
			t.Errorf("Detect(%q) = %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestDetectTieBreak(t *testing.T) {
	// "tủ lạnh Samsung" scores one appliance keyword and one electronics
	// keyword; home_appliances wins because it comes first in iteration
	// order. A lone brand keyword still classifies as electronics.
	if got := Detect("tủ lạnh Samsung"); got != HomeAppliances {
		t.Errorf("Detect(tủ lạnh Samsung) = %q; want home_appliances", got)
	}
	if got := Detect("samsung"); got != Electronics {
		t.Errorf("Detect(samsung) = %q; want electronics", got)
	}
}

func TestFilterByBound(t *testing.T) {
	listings := []model.Listing{
		{Title: "ok", Price: 15_000_000},
		{Title: "too cheap", Price: 50_000},
		{Title: "too expensive", Price: 500_000_000},
	}

	kept := FilterByBound(listings, Electronics)
	if len(kept) != 1 || kept[0].Title != "ok" {
		t.Fatalf("FilterByBound kept %v; want only the in-range listing", kept)
	}

	if kept := FilterByBound(nil, Electronics); len(kept) != 0 {
		t.Errorf("FilterByBound(nil) = %v; want empty", kept)
	}
}

func TestConditionMultiplier(t *testing.T) {
	tests := []struct {
		condition string
		want      float64
	}{
		{"moi", 0.95},
		{"nhu-moi", 0.85},
		{"99%", 0.80},
		{"con-bao-hanh", 0.75},
		{"het-bao-hanh", 0.65},
		{"something-else", 0.75},
		{"", 0.75},
	}
	for _, tt := range tests {
		if got := ConditionMultiplier(tt.condition); got != tt.want {
			t.Errorf("ConditionMultiplier(%q) = %v; want %v", tt.condition, got, tt.want)
		}
	}
}

func TestEstimateListings(t *testing.T) {
	listings := EstimateListings("MacBook Air M2 2022", Electronics)
	if len(listings) != 3 {
		t.Fatalf("expected 3 estimated listings, got %d", len(listings))
	}

	wantPrices := []int64{20_000_000, 30_000_000, 45_000_000}
	for i, l := range listings {
		if l.Price != wantPrices[i] {
			t.Errorf("listing %d price = %d; want %d", i, l.Price, wantPrices[i])
		}
		if l.Kind != model.KindEstimated {
			t.Errorf("listing %d kind = %q; want %q", i, l.Kind, model.KindEstimated)
		}
		if l.URL != "internal_estimation" {
			t.Errorf("listing %d url = %q; want internal placeholder", i, l.URL)
		}
	}
}

func TestEstimateListingsFirstMatchWins(t *testing.T) {
	// A keyword matches when any of its words appears in the query, so the
	// first iphone entry in the table captures every iphone query
	// regardless of generation.
	listings := EstimateListings("iPhone 13 128GB", Electronics)
	if len(listings) != 3 {
		t.Fatalf("expected 3 estimated listings, got %d", len(listings))
	}
	wantPrices := []int64{25_000_000, 35_000_000, 45_000_000}
	for i, l := range listings {
		if l.Price != wantPrices[i] {
			t.Errorf("listing %d price = %d; want %d", i, l.Price, wantPrices[i])
		}
	}
}

func TestEstimateListingsDefault(t *testing.T) {
	listings := EstimateListings("máy chơi game lạ", Electronics)
	if len(listings) != 3 {
		t.Fatalf("expected 3 estimated listings, got %d", len(listings))
	}
	want := estimateDefaults[Electronics]
	for i, l := range listings {
		if l.Price != want[i] {
			t.Errorf("default listing %d price = %d; want %d", i, l.Price, want[i])
		}
	}
}

func TestSourcesForSkipsInactive(t *testing.T) {
	for _, c := range categoryOrder {
		for _, s := range SourcesFor(c) {
			if !s.Active {
				t.Errorf("SourcesFor(%s) returned inactive source %s", c, s.Name)
			}
		}
	}
	if len(SourcesFor(Electronics)) != 3 {
		t.Errorf("expected 3 electronics sources, got %d", len(SourcesFor(Electronics)))
	}
}

func TestSearchFor(t *testing.T) {
	src := Source{SearchURL: "https://example.vn/tim-kiem?q={query}"}
	got := src.SearchFor("iPhone 13")
	want := "https://example.vn/tim-kiem?q=iPhone+13"
	if got != want {
		t.Errorf("SearchFor = %q; want %q", got, want)
	}
}
