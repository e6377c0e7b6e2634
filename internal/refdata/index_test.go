package refdata

import (
	"reflect"
	"testing"
)

// TestIndex_AddAndLookup tests basic country and region membership
func TestIndex_AddAndLookup(t *testing.T) {
	index := NewIndex()
	index.Add("US", "CA")
	index.Add("US", "NY")
	index.Add("FR", "75")

	if !index.HasCountry("US") {
		t.Error("expected US to be a known country")
	}
	if index.HasCountry("ZZ") {
		t.Error("expected ZZ to be unknown")
	}

	if !index.HasRegion("US", "CA") {
		t.Error("expected CA to be a region of US")
	}
	if index.HasRegion("US", "75") {
		t.Error("expected 75 not to be a region of US")
	}
	if index.HasRegion("ZZ", "CA") {
		t.Error("expected lookups against unknown countries to fail")
	}
}

// TestIndex_CaseSensitive tests that codes are matched exactly as given
func TestIndex_CaseSensitive(t *testing.T) {
	index := NewIndex()
	index.Add("US", "CA")

	if index.HasCountry("us") {
		t.Error("expected lowercase 'us' not to match, keys are case-sensitive")
	}
	if index.HasRegion("US", "ca") {
		t.Error("expected lowercase 'ca' not to match, regions are case-sensitive")
	}
}

// TestIndex_HasAnyRegion tests union membership across all countries
func TestIndex_HasAnyRegion(t *testing.T) {
	index := NewIndex()
	index.Add("US", "CA")
	index.Add("FR", "75")

	if !index.HasAnyRegion("CA") {
		t.Error("expected CA to be in the union")
	}
	if !index.HasAnyRegion("75") {
		t.Error("expected 75 to be in the union")
	}
	if index.HasAnyRegion("ZZ-NONE") {
		t.Error("expected ZZ-NONE not to be in any country's set")
	}
}

// TestIndex_DuplicatesAbsorbed tests that duplicate pairs do not accumulate
func TestIndex_DuplicatesAbsorbed(t *testing.T) {
	index := NewIndex()
	index.Add("US", "CA")
	index.Add("US", "CA")
	index.Add("US", "CA")

	if got := index.Regions("US"); !reflect.DeepEqual(got, []string{"CA"}) {
		t.Errorf("expected exactly [CA], got %v", got)
	}
}

// TestIndex_CountryCodesSorted tests deterministic enumeration
func TestIndex_CountryCodesSorted(t *testing.T) {
	index := NewIndex()
	index.Add("US", "CA")
	index.Add("DE", "BY")
	index.Add("FR", "75")

	want := []string{"DE", "FR", "US"}
	if got := index.CountryCodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if index.Len() != 3 {
		t.Errorf("expected 3 countries, got %d", index.Len())
	}
}

// TestIndex_RegionsUnknownCountry tests that Regions returns nil for unknown countries
func TestIndex_RegionsUnknownCountry(t *testing.T) {
	index := NewIndex()

	if got := index.Regions("ZZ"); got != nil {
		t.Errorf("expected nil for unknown country, got %v", got)
	}
}
