package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Ryanditko/Prova-RPA/internal/reading"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func i64Ptr(i int64) *int64     { return &i }

func sampleReading(city string) reading.Reading {
	return reading.Reading{
		City:              city,
		Country:           strPtr("GB"),
		TemperatureC:      f64Ptr(15.0),
		FeelsLikeC:        f64Ptr(14.2),
		TempMinC:          f64Ptr(12.0),
		TempMaxC:          f64Ptr(16.0),
		PressureHPa:       i64Ptr(1012),
		HumidityPct:       i64Ptr(80),
		Description:       strPtr("light rain"),
		WindSpeedMS:       f64Ptr(4.1),
		CloudCoverPct:     i64Ptr(75),
		ObservedAt:        time.Now().Format(reading.TimeLayout),
		ProviderTimestamp: i64Ptr(1700000000),
	}
}

func TestAppendAndRecent(t *testing.T) {
	s := testStore(t)

	for _, city := range []string{"A", "B", "C"} {
		if err := s.Append(sampleReading(city)); err != nil {
			t.Fatalf("append %s: %v", city, err)
		}
	}

	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// Newest insert first, ordered by primary key.
	if got[0].City != "C" || got[1].City != "B" {
		t.Errorf("expected [C B], got [%s %s]", got[0].City, got[1].City)
	}
}

func TestRecentLimitExceedsRows(t *testing.T) {
	s := testStore(t)
	if err := s.Append(sampleReading("London")); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 row, got %d", len(got))
	}
}

func TestRecentEmpty(t *testing.T) {
	s := testStore(t)

	got, err := s.Recent(5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 rows in empty store, got %d", len(got))
	}
}

func TestRecentZeroLimit(t *testing.T) {
	s := testStore(t)
	if err := s.Append(sampleReading("London")); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.Recent(0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 rows for zero limit, got %d", len(got))
	}
}

func TestAppendNullFields(t *testing.T) {
	s := testStore(t)

	r := reading.Reading{City: "Atlantis", ObservedAt: time.Now().Format(reading.TimeLayout)}
	if err := s.Append(r); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].City != "Atlantis" {
		t.Errorf("expected city Atlantis, got %q", got[0].City)
	}
	if got[0].TemperatureC != nil {
		t.Errorf("expected nil temperature, got %v", *got[0].TemperatureC)
	}
	if got[0].Description != nil {
		t.Errorf("expected nil description, got %v", *got[0].Description)
	}
}

func TestRepeatedRunsAppend(t *testing.T) {
	s := testStore(t)

	// Same city twice: no deduplication, just two rows.
	if err := s.Append(sampleReading("London")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(sampleReading("London")); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
}

func TestOpenIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s.Append(sampleReading("London")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening the same file must keep the table and its rows.
	s, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s.Close()

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 row to survive reopen, got %d", len(got))
	}
}

func TestStats(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Append(sampleReading("London")); err != nil {
		t.Fatalf("append: %v", err)
	}

	count, size, err := s.Stats(dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
	if size <= 0 {
		t.Errorf("expected a positive file size, got %d", size)
	}
}
