package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/util"
)

// InsertJobIfNew keeps a local history across runs, deduped by a hash
// of the detail-page URL. The CSV export is untouched by this and
// always carries the full extracted sequence.
func InsertJobIfNew(ctx context.Context, db *sql.DB, rec domain.JobRecord, url string) (bool, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return false, errors.New("missing url")
	}
	sourceID := util.HashString("url:" + url)

	res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs(source_id, url, title, company, location, date_posted, description,
  seniority_level, industries, employment_type, job_functions, scraped_at)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?);`,
		sourceID,
		url,
		rec.Title,
		rec.Company,
		rec.Location,
		rec.DatePosted,
		rec.Description,
		rec.SeniorityLevel,
		rec.Industries,
		rec.EmploymentType,
		rec.JobFunctions,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// CountJobs returns the stored history size.
func CountJobs(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}
