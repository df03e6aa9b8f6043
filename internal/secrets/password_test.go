package secrets_test

import (
	"testing"

	"github.com/zalando/go-keyring"

	"jobsweep/internal/secrets"
)

func TestLinkedInCredentialsKeyringFallback(t *testing.T) {
	keyring.MockInit()
	t.Setenv(secrets.EnvLinkedInEmail, "me@example.com")
	t.Setenv(secrets.EnvLinkedInPassword, "")

	if _, _, err := secrets.LinkedInCredentials(); err == nil {
		t.Fatal("expected error with no env password and an empty keychain")
	}

	if err := secrets.SetLinkedInPassword("me@example.com", "hunter2"); err != nil {
		t.Fatalf("SetLinkedInPassword: %v", err)
	}

	email, password, err := secrets.LinkedInCredentials()
	if err != nil {
		t.Fatalf("LinkedInCredentials: %v", err)
	}
	if email != "me@example.com" || password != "hunter2" {
		t.Errorf("got (%q, %q), want the keychain-backed credentials", email, password)
	}

	if err := secrets.DeleteLinkedInPassword("me@example.com"); err != nil {
		t.Fatalf("DeleteLinkedInPassword: %v", err)
	}
	if _, _, err := secrets.LinkedInCredentials(); err == nil {
		t.Fatal("expected error after the keychain entry was deleted")
	}
}

func TestLinkedInCredentialsEnvPasswordWins(t *testing.T) {
	keyring.MockInit()
	t.Setenv(secrets.EnvLinkedInEmail, "me@example.com")
	t.Setenv(secrets.EnvLinkedInPassword, "from-env")

	if err := secrets.SetLinkedInPassword("me@example.com", "from-keychain"); err != nil {
		t.Fatalf("SetLinkedInPassword: %v", err)
	}

	_, password, err := secrets.LinkedInCredentials()
	if err != nil {
		t.Fatalf("LinkedInCredentials: %v", err)
	}
	if password != "from-env" {
		t.Errorf("password = %q, env must take precedence over the keychain", password)
	}
}

func TestSetLinkedInPasswordRejectsEmptyInput(t *testing.T) {
	keyring.MockInit()
	if err := secrets.SetLinkedInPassword("", "pw"); err == nil {
		t.Error("expected error for empty email")
	}
	if err := secrets.SetLinkedInPassword("me@example.com", "  "); err == nil {
		t.Error("expected error for empty password")
	}
}
