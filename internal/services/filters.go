package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

type priceRange struct {
	min float64
	max float64
}

// budgetRanges is the fixed lookup table for human-facing budget buckets.
// Values are absolute rupees: K = thousand, L = lakh (1e5), Cr = crore (1e7).
// A zero max means the bucket is open-ended upwards.
var budgetRanges = map[string]priceRange{
	"5K-10K":   {5_000, 10_000},
	"10K-20K":  {10_000, 20_000},
	"20K-30K":  {20_000, 30_000},
	"30K-50K":  {30_000, 50_000},
	"50K-1L":   {50_000, 100_000},
	"1L+":      {100_000, 0},
	"10L-25L":  {1_000_000, 2_500_000},
	"25L-50L":  {2_500_000, 5_000_000},
	"50L-75L":  {5_000_000, 7_500_000},
	"75L-1Cr":  {7_500_000, 10_000_000},
	"1Cr-2Cr":  {10_000_000, 20_000_000},
	"2Cr-5Cr":  {20_000_000, 50_000_000},
	"5Cr+":     {50_000_000, 0},
}

var (
	areaRangeRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*sq\.?\s?ft\.?$`)
	areaMinRe   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*\+\s*sq\.?\s?ft\.?$`)
	bedroomsRe  = regexp.MustCompile(`^(\d+)\s*(\+)?\s*(?:BHK)?$`)
)

// NormalizeSearchFilters turns raw query parameters into a typed predicate
// set. Malformed values never produce an error: the dimension is simply left
// unfiltered, because the frontend builds these strings loosely and relies on
// the server shrugging off whatever it cannot parse.
func NormalizeSearchFilters(p models.SearchParams) models.SearchFilters {
	var f models.SearchFilters

	f.Status = strings.TrimSpace(p.Status)
	f.PropertyType = strings.TrimSpace(p.PropertyType)
	f.Search = strings.TrimSpace(p.Search)

	// city and location collapse into one substring predicate matched
	// against both columns.
	f.Location = strings.TrimSpace(p.Location)
	if f.Location == "" {
		f.Location = strings.TrimSpace(p.City)
	}

	f.MinPrice, f.MaxPrice = normalizePrice(p.MinPrice, p.MaxPrice, p.Budget)
	f.MinArea, f.MaxArea = normalizeArea(p.Area)
	f.BedroomsExact, f.BedroomsMin = normalizeBedrooms(p.Bedrooms)

	return f
}

// normalizePrice resolves explicit min/max parameters and the budget bucket
// into one price range. Explicit values take precedence over the bucket.
func normalizePrice(minRaw, maxRaw, budget string) (*float64, *float64) {
	var minPrice, maxPrice *float64

	if v, err := strconv.ParseFloat(strings.TrimSpace(minRaw), 64); err == nil && v > 0 {
		minPrice = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(maxRaw), 64); err == nil && v > 0 {
		maxPrice = &v
	}
	if minPrice != nil || maxPrice != nil {
		return minPrice, maxPrice
	}

	r, ok := budgetRanges[strings.TrimSpace(budget)]
	if !ok {
		// Unmapped bucket: no price filter at all.
		return nil, nil
	}
	min := r.min
	minPrice = &min
	if r.max > 0 {
		max := r.max
		maxPrice = &max
	}
	return minPrice, maxPrice
}

// normalizeArea parses "600-900 sq ft" and "1200+ sq ft" forms. Anything
// else is ignored.
func normalizeArea(raw string) (*float64, *float64) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil, nil
	}

	if m := areaRangeRe.FindStringSubmatch(s); m != nil {
		min, err1 := strconv.ParseFloat(m[1], 64)
		max, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || min > max {
			return nil, nil
		}
		return &min, &max
	}
	if m := areaMinRe.FindStringSubmatch(s); m != nil {
		min, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, nil
		}
		return &min, nil
	}
	return nil, nil
}

// normalizeBedrooms parses BHK strings. "3+ BHK" becomes a numeric
// bedrooms >= 3 predicate; "3 BHK" (or a bare "3") becomes an exact match
// against the stored value. Non-numeric values like "Studio" stay exact
// matches because bedrooms is stored as free text.
func normalizeBedrooms(raw string) (string, *int) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}

	if m := bedroomsRe.FindStringSubmatch(s); m != nil {
		if m[2] == "+" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return "", nil
			}
			return "", &n
		}
		return m[1], nil
	}

	// Legacy free-text storage ("Studio", "5+") compares exactly after
	// trimming any BHK suffix.
	exact := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "BHK"))
	if exact == "" {
		return "", nil
	}
	return exact, nil
}
