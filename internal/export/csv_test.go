package export_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jobsweep/internal/domain"
	"jobsweep/internal/export"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	records := []domain.JobRecord{
		{
			Title:          "Growth Marketer",
			Company:        "Acme Corp",
			Location:       "Austin, TX",
			DatePosted:     "2 weeks ago",
			Description:    "Owns the funnel, including \"paid\" channels\nand lifecycle.",
			SeniorityLevel: "Mid-Senior level",
			Industries:     "Retail",
			EmploymentType: "Full-time",
			JobFunctions:   "Marketing, Sales",
		},
		{
			Title:   "Backend Engineer",
			Company: "Initech",
			// DatePosted deliberately empty: must export as an empty
			// column, never a missing one.
		},
	}

	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := export.WriteCSV(path, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading output back: %v", err)
	}

	if got, want := len(rows), len(records)+1; got != want {
		t.Fatalf("got %d rows, want %d (header + %d records)", got, want, len(records))
	}
	if diff := cmp.Diff(domain.FieldNames(), rows[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	for i, rec := range records {
		if diff := cmp.Diff(rec.Values(), rows[i+1]); diff != "" {
			t.Errorf("record %d mismatch (-want +got):\n%s", i, diff)
		}
	}

	// Every row, including the one with the empty datePosted, carries
	// the full column set.
	for i, row := range rows {
		if len(row) != len(domain.FieldNames()) {
			t.Errorf("row %d has %d columns, want %d", i, len(row), len(domain.FieldNames()))
		}
	}
}

func TestWriteCSVOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := os.WriteFile(path, []byte("stale contents\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := export.WriteCSV(path, []domain.JobRecord{{Title: "Fresh"}}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading output back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1][0] != "Fresh" {
		t.Errorf("first record title = %q, want %q", rows[1][0], "Fresh")
	}
}

func TestWriteCSVRefusesEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")

	err := export.WriteCSV(path, nil)
	if !errors.Is(err, export.ErrNoRecords) {
		t.Fatalf("WriteCSV(nil) error = %v, want ErrNoRecords", err)
	}

	// The refusal must happen before any file is touched.
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("output file was created despite empty record set")
	}
}
