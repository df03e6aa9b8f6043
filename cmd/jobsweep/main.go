package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"jobsweep/internal/browser"
	"jobsweep/internal/config"
	"jobsweep/internal/domain"
	"jobsweep/internal/export"
	email_scrape "jobsweep/internal/scrape/email"
	"jobsweep/internal/scrape/linkedin"
	"jobsweep/internal/scrape/util"
	"jobsweep/internal/secrets"
	"jobsweep/internal/store"
)

func main() {
	setPW := flag.Bool("set-password", false, "store the LinkedIn password for LINKEDIN_EMAIL in the OS keychain and exit")
	deletePW := flag.Bool("delete-password", false, "remove the keychain entry for LINKEDIN_EMAIL and exit")
	flag.Parse()

	if *setPW || *deletePW {
		if err := managePassword(*setPW); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// managePassword seeds or clears the keychain entry that
// LinkedInCredentials falls back to when LINKEDIN_PASSWORD is unset.
func managePassword(set bool) error {
	email := strings.TrimSpace(os.Getenv(secrets.EnvLinkedInEmail))
	if email == "" {
		return fmt.Errorf("%s is not set", secrets.EnvLinkedInEmail)
	}

	if !set {
		if err := secrets.DeleteLinkedInPassword(email); err != nil {
			return fmt.Errorf("deleting keychain entry: %w", err)
		}
		log.Printf("[secrets] keychain entry removed for %s", email)
		return nil
	}

	fmt.Fprintf(os.Stderr, "password for %s: ", email)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return fmt.Errorf("reading password: %w", err)
	}
	if err := secrets.SetLinkedInPassword(email, strings.TrimSpace(line)); err != nil {
		return fmt.Errorf("storing password: %w", err)
	}
	log.Printf("[secrets] password stored for %s", email)
	return nil
}

// run keeps the whole pipeline behind a single error return so the
// deferred session/db/lock releases fire on fatal paths too.
func run() error {
	dataDir := os.Getenv("JOBSWEEP_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// One run at a time; two instances would clobber the CSV and db.
	lock := flock.New(filepath.Join(dataDir, "jobsweep.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("run lock: %w", err)
	}
	if !locked {
		return errors.New("another jobsweep run is already holding the lock")
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return fmt.Errorf("config bootstrap failed: %w", err)
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, w := range validation.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !validation.OK() {
		return fmt.Errorf("config validation failed:\n- %s", joinLines(validation.Errors))
	}

	// Credentials are resolved before any browser work; a missing login
	// is a misconfiguration, not a scrape failure.
	email, password, err := secrets.LinkedInCredentials()
	if err != nil {
		return fmt.Errorf("credentials: %w", err)
	}

	db, err := store.Open(filepath.Join(dataDir, "jobsweep.db"))
	if err != nil {
		return fmt.Errorf("opening db: %w", err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		return fmt.Errorf("migrating db: %w", err)
	}

	ctx := context.Background()

	sess, err := browser.New(ctx, browser.Options{
		Headless:    cfg.Browser.Headless,
		WaitTimeout: time.Duration(cfg.Browser.WaitTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	limiter := util.NewNavLimiter(time.Duration(cfg.Browser.MinDelayMillis) * time.Millisecond)
	sc := linkedin.New(sess, limiter, cfg)

	if err := sc.Login(ctx, email, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	links, err := sc.CollectLinks(ctx)
	if err != nil {
		return fmt.Errorf("collecting links: %w", err)
	}

	// Optional secondary source: unseen job-alert emails. Failures here
	// degrade the run, they don't kill it.
	if cfg.Email.Enabled {
		imapPassword, err := secrets.IMAPPassword(cfg)
		if err != nil {
			log.Printf("[email] skipped: %v", err)
		} else {
			alertLinks, err := email_scrape.CollectAlertLinks(ctx, cfg, imapPassword)
			if err != nil {
				log.Printf("[email] skipped: %v", err)
			} else {
				links = append(links, alertLinks...)
			}
		}
	}

	records := make([]domain.JobRecord, 0, len(links))
	for i, link := range links {
		rec, err := sc.ExtractJob(ctx, link)
		if err != nil {
			return fmt.Errorf("extracting %d/%d: %w", i+1, len(links), err)
		}
		records = append(records, rec)

		if added, err := store.InsertJobIfNew(ctx, db.Pool, rec, link); err != nil {
			log.Printf("[store] %s: %v", link, err)
		} else if added {
			log.Printf("[store] new job: %s @ %s", rec.Title, rec.Company)
		}
	}

	outPath := cfg.App.OutputCSV
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(dataDir, outPath)
	}
	if err := export.WriteCSV(outPath, records); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	total, _ := store.CountJobs(ctx, db.Pool)
	log.Printf("[jobsweep] done: %d records -> %s (history=%d)", len(records), outPath, total)
	return nil
}

func joinLines(xs []string) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += "\n- "
		}
		out += x
	}
	return out
}
