package refdata

import "sort"

// Index maps a country code to the set of region codes that are valid
// within that country. It is built once by a Source at startup and only
// read afterwards - nothing mutates it during validation, so it is safe
// to share without locking.
//
// Country codes are exact-match keys: no case folding, no trimming.
// The source data is trusted as-is.
type Index struct {
	// regions maps country code -> set of region codes
	regions map[string]map[string]struct{}

	// all is the union of every country's region set, kept alongside so
	// the "no country specified" lookup stays O(1)
	all map[string]struct{}
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{
		regions: make(map[string]map[string]struct{}),
		all:     make(map[string]struct{}),
	}
}

// Add records one (country, region) pair. Duplicates are absorbed by the
// set, so sources can feed every row without deduplicating first.
func (x *Index) Add(country, region string) {
	set, ok := x.regions[country]
	if !ok {
		set = make(map[string]struct{})
		x.regions[country] = set
	}
	set[region] = struct{}{}
	x.all[region] = struct{}{}
}

// HasCountry reports whether the country code exists in the index
func (x *Index) HasCountry(country string) bool {
	_, ok := x.regions[country]
	return ok
}

// HasRegion reports whether the region code is valid within the given country
func (x *Index) HasRegion(country, region string) bool {
	set, ok := x.regions[country]
	if !ok {
		return false
	}
	_, ok = set[region]
	return ok
}

// HasAnyRegion reports whether the region code is valid in at least one
// country. Used when a feed record carries a region but no country.
func (x *Index) HasAnyRegion(region string) bool {
	_, ok := x.all[region]
	return ok
}

// Len returns the number of countries in the index
func (x *Index) Len() int {
	return len(x.regions)
}

// CountryCodes returns all country codes in sorted order
func (x *Index) CountryCodes() []string {
	codes := make([]string, 0, len(x.regions))
	for cc := range x.regions {
		codes = append(codes, cc)
	}
	sort.Strings(codes)
	return codes
}

// Regions returns the region codes for a country in sorted order.
// Returns nil for an unknown country.
func (x *Index) Regions(country string) []string {
	set, ok := x.regions[country]
	if !ok {
		return nil
	}
	regions := make([]string, 0, len(set))
	for r := range set {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}
