package email_scrape_test

import (
	"testing"

	email_scrape "jobsweep/internal/scrape/email"
)

// Missing settings must fail before any dialing happens.
func TestDialAndLoginRejectsMissingSettings(t *testing.T) {
	if _, err := email_scrape.DialAndLogin("", "user", "pw"); err == nil {
		t.Error("expected error for empty addr")
	}
	if _, err := email_scrape.DialAndLogin("imap.example.com:993", "", "pw"); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := email_scrape.DialAndLogin("imap.example.com:993", "user", ""); err == nil {
		t.Error("expected error for empty password")
	}
}
