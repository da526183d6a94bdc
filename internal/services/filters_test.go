package services

import (
	"testing"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

func TestNormalizeBudgetBucket(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Budget: "25L-50L"})
	if f.MinPrice == nil || *f.MinPrice != 2_500_000 {
		t.Fatalf("expected min price 2500000, got %v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 5_000_000 {
		t.Fatalf("expected max price 5000000, got %v", f.MaxPrice)
	}
}

func TestNormalizeBudgetBucketOpenEnded(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Budget: "5Cr+"})
	if f.MinPrice == nil || *f.MinPrice != 50_000_000 {
		t.Fatalf("expected min price 50000000, got %v", f.MinPrice)
	}
	if f.MaxPrice != nil {
		t.Fatalf("expected open-ended bucket to have no max, got %v", *f.MaxPrice)
	}
}

func TestNormalizeUnknownBudgetBucketIgnored(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Budget: "a-lot-of-money"})
	if f.MinPrice != nil || f.MaxPrice != nil {
		t.Fatalf("unmapped bucket must produce no price filter, got min=%v max=%v", f.MinPrice, f.MaxPrice)
	}
}

func TestExplicitPriceBeatsBudgetBucket(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{
		MinPrice: "100000",
		MaxPrice: "200000",
		Budget:   "25L-50L",
	})
	if f.MinPrice == nil || *f.MinPrice != 100000 {
		t.Fatalf("expected explicit min price to win, got %v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 200000 {
		t.Fatalf("expected explicit max price to win, got %v", f.MaxPrice)
	}
}

func TestNormalizeAreaRange(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Area: "600-900 sq ft"})
	if f.MinArea == nil || *f.MinArea != 600 {
		t.Fatalf("expected min area 600, got %v", f.MinArea)
	}
	if f.MaxArea == nil || *f.MaxArea != 900 {
		t.Fatalf("expected max area 900, got %v", f.MaxArea)
	}
}

func TestNormalizeAreaMinOnly(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Area: "1200+ sq ft"})
	if f.MinArea == nil || *f.MinArea != 1200 {
		t.Fatalf("expected min area 1200, got %v", f.MinArea)
	}
	if f.MaxArea != nil {
		t.Fatalf("expected no max area, got %v", *f.MaxArea)
	}
}

func TestNormalizeAreaGarbageIgnored(t *testing.T) {
	for _, raw := range []string{"big", "sq ft", "900-600 sq ft", "12 acres"} {
		f := NormalizeSearchFilters(models.SearchParams{Area: raw})
		if f.MinArea != nil || f.MaxArea != nil {
			t.Errorf("area %q should be ignored, got min=%v max=%v", raw, f.MinArea, f.MaxArea)
		}
	}
}

func TestNormalizeBedroomsWithPlus(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Bedrooms: "3+ BHK"})
	if f.BedroomsMin == nil || *f.BedroomsMin != 3 {
		t.Fatalf("expected bedrooms min 3, got %v", f.BedroomsMin)
	}
	if f.BedroomsExact != "" {
		t.Fatalf("expected no exact bedrooms predicate, got %q", f.BedroomsExact)
	}
}

func TestNormalizeBedroomsExact(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Bedrooms: "3 BHK"})
	if f.BedroomsExact != "3" {
		t.Fatalf("expected exact bedrooms %q, got %q", "3", f.BedroomsExact)
	}
	if f.BedroomsMin != nil {
		t.Fatalf("expected no min bedrooms predicate, got %v", *f.BedroomsMin)
	}
}

func TestNormalizeBedroomsFreeText(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{Bedrooms: "Studio"})
	if f.BedroomsExact != "Studio" {
		t.Fatalf("expected free-text bedrooms kept as exact match, got %q", f.BedroomsExact)
	}
}

func TestLocationFallsBackToCity(t *testing.T) {
	f := NormalizeSearchFilters(models.SearchParams{City: "Pune"})
	if f.Location != "Pune" {
		t.Fatalf("expected city to back the location predicate, got %q", f.Location)
	}

	f = NormalizeSearchFilters(models.SearchParams{Location: "Baner", City: "Pune"})
	if f.Location != "Baner" {
		t.Fatalf("expected location to win over city, got %q", f.Location)
	}
}

func TestNormalizeIsPure(t *testing.T) {
	params := models.SearchParams{Budget: "25L-50L", Bedrooms: "2+ BHK", Area: "600-900 sq ft"}
	first := NormalizeSearchFilters(params)
	second := NormalizeSearchFilters(params)

	if *first.MinPrice != *second.MinPrice || *first.MaxPrice != *second.MaxPrice {
		t.Fatal("normalization must be deterministic for identical input")
	}
	if *first.BedroomsMin != *second.BedroomsMin {
		t.Fatal("bedrooms normalization must be deterministic")
	}
}
