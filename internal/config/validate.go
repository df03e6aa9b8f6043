package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults for unset knobs and returns a
// normalized copy plus anything worth refusing to run over.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Search.Keywords = strings.TrimSpace(out.Search.Keywords)
	out.Search.Location = strings.TrimSpace(out.Search.Location)
	out.App.OutputCSV = strings.TrimSpace(out.App.OutputCSV)

	if out.App.OutputCSV == "" {
		out.App.OutputCSV = "jobs.csv"
	}

	// ---- Browser defaults ----
	if out.Browser.WaitTimeoutSeconds <= 0 {
		out.Browser.WaitTimeoutSeconds = 10
	}
	if out.Browser.MinDelayMillis < 0 {
		res.addErr("browser.min_delay_millis must be >= 0")
	}
	if out.Browser.MinDelayMillis == 0 {
		out.Browser.MinDelayMillis = 1500
	}
	if out.Browser.ScrollStepPixels <= 0 {
		out.Browser.ScrollStepPixels = 400
	}
	if out.Browser.ScrollIntervalMillis <= 0 {
		out.Browser.ScrollIntervalMillis = 120
	}
	if out.Browser.ScrollMaxSteps <= 0 {
		out.Browser.ScrollMaxSteps = 200
	}
	if out.Browser.ScrollMaxSeconds <= 0 {
		out.Browser.ScrollMaxSeconds = 45
	}

	// ---- Validation rules ----

	if out.Search.Keywords == "" {
		res.addErr("search.keywords is required")
	}

	if out.Browser.MinDelayMillis < 500 {
		res.addWarn("browser.min_delay_millis is very low (%d); the target site may flag the session.", out.Browser.MinDelayMillis)
	}

	// email required fields if enabled (password not required here; it's
	// read from env or keychain)
	if out.Email.Enabled {
		if strings.TrimSpace(out.Email.IMAPHost) == "" {
			res.addErr("email.imap_host is required when email.enabled=true")
		}
		if out.Email.IMAPPort == 0 {
			res.addErr("email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Username) == "" {
			res.addErr("email.username is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Mailbox) == "" {
			out.Email.Mailbox = "INBOX"
		}
		if out.Email.MaxEmails <= 0 {
			out.Email.MaxEmails = 50
		}
		if len(out.Email.SearchSubjectAny) == 0 {
			res.addWarn("email.search_subject_any is empty; alert scanning may find nothing.")
		}
	}

	out.Email.SearchSubjectAny = trimList(out.Email.SearchSubjectAny)

	return out, res
}

func trimList(xs []string) []string {
	seen := map[string]bool{}
	var ys []string
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}
