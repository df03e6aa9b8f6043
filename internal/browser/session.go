package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0 Safari/537.36"

type Options struct {
	Headless bool
	// WaitTimeout bounds every WaitVisible-style poll; a selector that
	// hasn't shown up by then is treated as absent.
	WaitTimeout time.Duration
}

// Session owns one Chrome process and one tab. Callers pass it
// explicitly through the pipeline; Close must run on every exit path.
type Session struct {
	ctx         context.Context
	cancels     []context.CancelFunc
	waitTimeout time.Duration
}

func New(parent context.Context, opts Options) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	s := &Session{
		ctx:         tabCtx,
		cancels:     []context.CancelFunc{tabCancel, allocCancel},
		waitTimeout: opts.WaitTimeout,
	}
	if s.waitTimeout <= 0 {
		s.waitTimeout = 10 * time.Second
	}

	// Force the browser process up front so a missing Chrome binary
	// fails here, not mid-login.
	if err := chromedp.Run(tabCtx, chromedp.Navigate("about:blank")); err != nil {
		s.Close()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}
	return s, nil
}

func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// Navigate loads url and waits for the document body to be ready.
func (s *Session) Navigate(url string) error {
	return chromedp.Run(s.ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

// WaitVisible polls for sel, bounded by the session wait timeout.
func (s *Session) WaitVisible(sel string) error {
	waitCtx, cancel := context.WithTimeout(s.ctx, s.waitTimeout)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("waiting for %q: %w", sel, err)
	}
	return nil
}

// Exists reports whether sel matches anything right now, without waiting.
func (s *Session) Exists(sel string) bool {
	var n int
	err := chromedp.Run(s.ctx,
		chromedp.Evaluate(fmt.Sprintf(`document.querySelectorAll(%q).length`, sel), &n),
	)
	return err == nil && n > 0
}

// ClickIfExists clicks the first match of sel and reports whether a
// match was found. A missing element is not an error.
func (s *Session) ClickIfExists(sel string) bool {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return false;
		el.scrollIntoView({behavior:'instant', block:'center'});
		el.click();
		return true;
	})()`, sel)
	var clicked bool
	if err := chromedp.Run(s.ctx, chromedp.Evaluate(js, &clicked)); err != nil {
		return false
	}
	return clicked
}

// SendKeys focuses sel and types value into it.
func (s *Session) SendKeys(sel, value string) error {
	return chromedp.Run(s.ctx, chromedp.SendKeys(sel, value, chromedp.ByQuery))
}

// Click waits for sel (bounded) and clicks it.
func (s *Session) Click(sel string) error {
	if err := s.WaitVisible(sel); err != nil {
		return err
	}
	return chromedp.Run(s.ctx, chromedp.Click(sel, chromedp.ByQuery))
}

// OuterHTML returns the full current document markup.
func (s *Session) OuterHTML() (string, error) {
	var html string
	err := chromedp.Run(s.ctx,
		chromedp.Evaluate(`document.documentElement.outerHTML`, &html),
	)
	return html, err
}

// AttrOf reads attribute attr from the first match of sel, or "" when
// nothing matches.
func (s *Session) AttrOf(sel, attr string) string {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el ? (el.getAttribute(%q) || "") : "";
	})()`, sel, attr)
	var out string
	if err := chromedp.Run(s.ctx, chromedp.Evaluate(js, &out)); err != nil {
		return ""
	}
	return out
}

// WaitAttrChange polls until the first match of sel carries an attr
// value different from old, bounded by the session wait timeout. Used
// after in-page navigations where the stale content keeps rendering
// while the replacement loads, so mere presence proves nothing.
func (s *Session) WaitAttrChange(sel, attr, old string) error {
	deadline := time.Now().Add(s.waitTimeout)
	for {
		if cur := s.AttrOf(sel, attr); cur != "" && cur != old {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("waiting for %q %s to change: timed out", sel, attr)
		}
		time.Sleep(150 * time.Millisecond)
	}
}

// Text reads the trimmed text content of the first match of sel, or ""
// if nothing matches.
func (s *Session) Text(sel string) string {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el ? el.textContent.trim() : "";
	})()`, sel)
	var out string
	if err := chromedp.Run(s.ctx, chromedp.Evaluate(js, &out)); err != nil {
		return ""
	}
	return out
}
