package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"jobsweep/internal/domain"
)

// ErrNoRecords is returned instead of writing a header-only file; a run
// that extracted nothing is a failed run.
var ErrNoRecords = errors.New("no job records to export")

// WriteCSV serializes records to path, overwriting any existing file.
// Header row is domain.FieldNames in declaration order, one row per
// record, standard csv quoting.
func WriteCSV(path string, records []domain.JobRecord) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(domain.FieldNames()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := w.Write(rec.Values()); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
