package refdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeRefFile creates a temporary reference CSV and returns its path
func writeRefFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iso3166_2.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

// TestCSVSource_LoadValidFile tests loading a well-formed reference file
func TestCSVSource_LoadValidFile(t *testing.T) {
	path := writeRefFile(t, `US,California,CA
US,New York,NY
FR,Paris,75`)

	source := NewCSVSource(path)
	defer source.Close()

	index, err := source.LoadIndex()
	if err != nil {
		t.Fatalf("failed to load index: %v", err)
	}

	if index.Len() != 2 {
		t.Errorf("expected 2 countries, got %d", index.Len())
	}
	if !index.HasRegion("US", "CA") {
		t.Error("expected US/CA to be loaded")
	}
	if !index.HasRegion("US", "NY") {
		t.Error("expected US/NY to be loaded")
	}
	if !index.HasRegion("FR", "75") {
		t.Error("expected FR/75 to be loaded")
	}
}

// TestCSVSource_FileNotFound tests handling of a nonexistent file
func TestCSVSource_FileNotFound(t *testing.T) {
	source := NewCSVSource("/nonexistent/path/file.csv")

	if _, err := source.LoadIndex(); err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

// TestCSVSource_ShortRowIsFatal tests that a row with fewer than 3
// columns fails the entire load - a partial index is never returned
func TestCSVSource_ShortRowIsFatal(t *testing.T) {
	path := writeRefFile(t, `US,California,CA
DE,Bavaria
FR,Paris,75`)

	source := NewCSVSource(path)

	index, err := source.LoadIndex()
	if err == nil {
		t.Fatal("expected error for 2-column row, got nil")
	}
	if index != nil {
		t.Error("expected no index when the load fails")
	}
	if !strings.Contains(err.Error(), "2 columns") {
		t.Errorf("expected error to mention the column count, got %q", err)
	}
}

// TestReadIndex_ExtraColumnsIgnored tests that columns past index 2 are ignored
func TestReadIndex_ExtraColumnsIgnored(t *testing.T) {
	index, err := ReadIndex(strings.NewReader("US,California,CA,extra,columns\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !index.HasRegion("US", "CA") {
		t.Error("expected US/CA despite extra columns")
	}
}

// TestReadIndex_Empty tests that an empty source yields an empty index
func TestReadIndex_Empty(t *testing.T) {
	index, err := ReadIndex(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.Len() != 0 {
		t.Errorf("expected empty index, got %d countries", index.Len())
	}
}

// TestReadIndex_SubdivisionNameNotIndexed tests that column 1 plays no
// part in lookups - only columns 0 and 2 matter
func TestReadIndex_SubdivisionNameNotIndexed(t *testing.T) {
	index, err := ReadIndex(strings.NewReader("US,California,CA\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.HasAnyRegion("California") {
		t.Error("expected the subdivision name not to be indexed as a region")
	}
}
