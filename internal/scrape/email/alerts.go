package email_scrape

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emersion/go-imap/v2"

	"jobsweep/internal/config"
)

// CollectAlertLinks scans unseen job-alert emails and returns the
// detail-page URLs they carry, in message order. The links feed the
// same detail extractor as the paginated search; this runs strictly
// after pagination and before extraction, never concurrently.
func CollectAlertLinks(ctx context.Context, cfg config.Config, password string) ([]string, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Email.IMAPHost, cfg.Email.IMAPPort)
	c, err := DialAndLogin(addr, cfg.Email.Username, password)
	if err != nil {
		return nil, err
	}
	defer LogoutAndClose(c)

	if err := SelectMailbox(c, cfg.Email.Mailbox); err != nil {
		return nil, err
	}

	msgs, err := FetchUnseen(ctx, c, cfg.Email.MaxEmails)
	if err != nil {
		return nil, err
	}

	var links []string
	var scanned []imap.UID
	for _, m := range msgs {
		if !subjectMatches(m.Subject, cfg.Email.SearchSubjectAny) {
			continue
		}
		htmlBody := htmlPart(m.RawMessage)
		if htmlBody == "" {
			continue
		}
		found, err := ParseJobAlertLinks(htmlBody)
		if err != nil {
			log.Printf("[email] uid=%d parse: %v", m.UID, err)
			continue
		}
		links = append(links, found...)
		scanned = append(scanned, m.UID)
	}

	if err := MarkSeen(c, scanned); err != nil {
		log.Printf("[email] mark seen: %v", err)
	}

	log.Printf("[email] %d alert emails scanned, %d links", len(scanned), len(links))
	return links, nil
}

// ParseJobAlertLinks pulls linkedin /jobs/view/ URLs out of an alert
// email's HTML body. Each distinct job id is returned once, in document
// order, with tracking wrappers unwrapped.
func ParseJobAlertLinks(htmlBody string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return nil, err
	}

	var out []string
	seen := map[string]bool{}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		lh := strings.ToLower(href)
		if !strings.Contains(lh, "linkedin.com") {
			return
		}
		if !strings.Contains(lh, "/jobs/view/") && !strings.Contains(lh, "/comm/jobs/view/") {
			return
		}

		jobURL := unwrapRedirect(href)
		if jobURL == "" || seen[jobURL] {
			return
		}
		seen[jobURL] = true
		out = append(out, jobURL)
	})

	return out, nil
}

func subjectMatches(subject string, any []string) bool {
	if len(any) == 0 {
		return true
	}
	s := strings.ToLower(subject)
	for _, term := range any {
		if strings.Contains(s, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// unwrapRedirect resolves ?url= wrapper links to the target they carry
// and drops tracking query params from direct links.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if raw := u.Query().Get("url"); raw != "" {
		if uu, err := url.Parse(raw); err == nil && uu.Host != "" {
			u = uu
		}
	}
	if u.Host == "" {
		return ""
	}

	u.Fragment = ""
	u.RawQuery = ""
	return u.String()
}
