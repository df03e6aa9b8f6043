package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"jobsweep/internal/config"
)

const (
	// "Service" groups the app's secrets in the OS keychain.
	KeyringService = "jobsweep"

	EnvLinkedInEmail    = "LINKEDIN_EMAIL"
	EnvLinkedInPassword = "LINKEDIN_PASSWORD"
	EnvIMAPPassword     = "JOBSWEEP_IMAP_PASSWORD"
)

// LinkedInCredentials resolves the login credentials before any browser
// work starts. Email comes from the environment; the password comes
// from the environment first, then the OS keychain. Missing credentials
// are a fatal misconfiguration for the caller.
func LinkedInCredentials() (email, password string, err error) {
	email = strings.TrimSpace(os.Getenv(EnvLinkedInEmail))
	if email == "" {
		return "", "", fmt.Errorf("%s is not set", EnvLinkedInEmail)
	}

	password = os.Getenv(EnvLinkedInPassword)
	if strings.TrimSpace(password) != "" {
		return email, password, nil
	}

	pw, kerr := keyring.Get(KeyringService, linkedInKeyringAccount(email))
	if kerr == nil && strings.TrimSpace(pw) != "" {
		return email, pw, nil
	}

	return "", "", fmt.Errorf("%s is not set and no keychain entry exists for %s", EnvLinkedInPassword, email)
}

func SetLinkedInPassword(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, linkedInKeyringAccount(email), password)
}

func DeleteLinkedInPassword(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is empty")
	}
	return keyring.Delete(KeyringService, linkedInKeyringAccount(email))
}

func linkedInKeyringAccount(email string) string {
	return "jobsweep:linkedin:" + email
}

// IMAPPassword resolves the alert-mailbox password the same way:
// environment first, keychain second.
func IMAPPassword(cfg config.Config) (string, error) {
	if pw := os.Getenv(EnvIMAPPassword); strings.TrimSpace(pw) != "" {
		return pw, nil
	}

	account := IMAPKeyringAccount(cfg)
	pw, err := keyring.Get(KeyringService, account)
	if err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}

	return "", errors.New("IMAP password not found (set it in keychain or via env)")
}

func IMAPKeyringAccount(cfg config.Config) string {
	return fmt.Sprintf(
		"jobsweep:imap:%s@%s",
		cfg.Email.Username,
		cfg.Email.IMAPHost,
	)
}
