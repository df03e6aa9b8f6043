package linkedin

import (
	"context"
	"net/url"
	"time"

	"jobsweep/internal/browser"
	"jobsweep/internal/config"
	"jobsweep/internal/scrape/util"
)

// Scraper drives one browser session through the whole run:
// login, link collection, detail extraction. Strictly sequential.
type Scraper struct {
	sess    *browser.Session
	limiter *util.NavLimiter
	cfg     config.Config
}

func New(sess *browser.Session, limiter *util.NavLimiter, cfg config.Config) *Scraper {
	return &Scraper{sess: sess, limiter: limiter, cfg: cfg}
}

func (s *Scraper) searchURL() string {
	q := url.Values{}
	q.Set("keywords", s.cfg.Search.Keywords)
	if s.cfg.Search.Location != "" {
		q.Set("location", s.cfg.Search.Location)
	}
	return searchBaseURL + "?" + q.Encode()
}

// loggedIn checks for the navbar profile photo. Checked before every
// selector choice because login state can change mid-run.
func (s *Scraper) loggedIn() bool {
	return s.sess.Exists(profilePhotoSelector)
}

func (s *Scraper) navigate(ctx context.Context, u string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.sess.Navigate(u)
}

func (s *Scraper) scroll() error {
	return s.sess.ScrollToBottom(browser.ScrollOptions{
		Step:        s.cfg.Browser.ScrollStepPixels,
		Interval:    time.Duration(s.cfg.Browser.ScrollIntervalMillis) * time.Millisecond,
		MaxSteps:    s.cfg.Browser.ScrollMaxSteps,
		MaxDuration: time.Duration(s.cfg.Browser.ScrollMaxSeconds) * time.Second,
	})
}
