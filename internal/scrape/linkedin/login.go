package linkedin

import (
	"context"
	"fmt"
	"log"
)

// Login navigates to the login form, fills the credentials and submits.
// The only fatal condition is a missing form control; everything past
// the submit click is best-effort. There is no retry and no guarantee
// the session actually ends up authenticated; the rest of the run
// re-checks login state per page and degrades to the anonymous markup.
func (s *Scraper) Login(ctx context.Context, email, password string) error {
	if err := s.navigate(ctx, loginURL); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}

	if err := s.sess.WaitVisible(loginEmailSelector); err != nil {
		return fmt.Errorf("login form: %w", err)
	}
	if err := s.sess.SendKeys(loginEmailSelector, email); err != nil {
		return fmt.Errorf("filling email: %w", err)
	}
	if err := s.sess.SendKeys(loginPasswordSelector, password); err != nil {
		return fmt.Errorf("filling password: %w", err)
	}

	// CAPTCHA checkbox, when present. Never verified; image challenges
	// are not handled at all.
	if s.sess.ClickIfExists(captchaCheckboxSelector) {
		log.Printf("[login] clicked captcha checkbox (best-effort, unverified)")
	}

	if err := s.sess.Click(loginSubmitSelector); err != nil {
		return fmt.Errorf("login submit control: %w", err)
	}

	// Bounded wait for the authenticated navbar; timing out is not a
	// failure, the site may have bounced the session already.
	if err := s.sess.WaitVisible(profilePhotoSelector); err != nil {
		log.Printf("[login] no profile photo after submit; continuing with public markup")
	} else {
		log.Printf("[login] authenticated as %s", email)
	}
	return nil
}
