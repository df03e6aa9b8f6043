package config_test

import (
	"strings"
	"testing"

	"jobsweep/internal/config"
)

func TestNormalizeAndValidateDefaults(t *testing.T) {
	var cfg config.Config
	cfg.Search.Keywords = "  software engineer  "

	out, res := config.NormalizeAndValidate(cfg)

	if !res.OK() {
		t.Fatalf("expected valid config, got errors: %v", res.Errors)
	}
	if out.Search.Keywords != "software engineer" {
		t.Errorf("keywords not trimmed: %q", out.Search.Keywords)
	}
	if out.App.OutputCSV != "jobs.csv" {
		t.Errorf("output_csv default = %q, want jobs.csv", out.App.OutputCSV)
	}
	if out.Browser.WaitTimeoutSeconds != 10 {
		t.Errorf("wait_timeout_seconds default = %d, want 10", out.Browser.WaitTimeoutSeconds)
	}
	if out.Browser.MinDelayMillis != 1500 {
		t.Errorf("min_delay_millis default = %d, want 1500", out.Browser.MinDelayMillis)
	}
	if out.Browser.ScrollMaxSteps != 200 {
		t.Errorf("scroll_max_steps default = %d, want 200", out.Browser.ScrollMaxSteps)
	}
}

func TestNormalizeAndValidateRequiresKeywords(t *testing.T) {
	var cfg config.Config

	_, res := config.NormalizeAndValidate(cfg)

	if res.OK() {
		t.Fatal("expected validation errors for empty keywords")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "search.keywords") {
			found = true
		}
	}
	if !found {
		t.Errorf("no search.keywords error in %v", res.Errors)
	}
}

func TestNormalizeAndValidateEmail(t *testing.T) {
	var cfg config.Config
	cfg.Search.Keywords = "go developer"
	cfg.Email.Enabled = true
	cfg.Email.IMAPHost = "imap.gmail.com"
	cfg.Email.IMAPPort = 993
	cfg.Email.Username = "me@example.com"
	cfg.Email.SearchSubjectAny = []string{" job alert ", "Job Alert", ""}

	out, res := config.NormalizeAndValidate(cfg)

	if !res.OK() {
		t.Fatalf("expected valid config, got errors: %v", res.Errors)
	}
	if out.Email.Mailbox != "INBOX" {
		t.Errorf("mailbox default = %q, want INBOX", out.Email.Mailbox)
	}
	if out.Email.MaxEmails != 50 {
		t.Errorf("max_emails default = %d, want 50", out.Email.MaxEmails)
	}
	if len(out.Email.SearchSubjectAny) != 1 || out.Email.SearchSubjectAny[0] != "job alert" {
		t.Errorf("search_subject_any not deduped/trimmed: %v", out.Email.SearchSubjectAny)
	}
}

func TestNormalizeAndValidateEmailMissingHost(t *testing.T) {
	var cfg config.Config
	cfg.Search.Keywords = "go developer"
	cfg.Email.Enabled = true

	_, res := config.NormalizeAndValidate(cfg)

	if res.OK() {
		t.Fatal("expected validation errors for enabled email with no host")
	}
}
