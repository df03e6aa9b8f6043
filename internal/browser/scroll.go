package browser

import (
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

type ScrollOptions struct {
	Step     int
	Interval time.Duration
	// MaxSteps and MaxDuration cap the scroll. A page whose height keeps
	// growing stops here and the caller proceeds with what loaded.
	MaxSteps    int
	MaxDuration time.Duration
}

// ScrollToBottom scrolls the viewport down in fixed increments until
// the accumulated distance reaches the content height, re-reading the
// height each tick so lazy-loaded growth is accounted for. Hitting
// either cap is not an error.
func (s *Session) ScrollToBottom(opts ScrollOptions) error {
	if opts.Step <= 0 {
		opts.Step = 400
	}
	if opts.Interval <= 0 {
		opts.Interval = 120 * time.Millisecond
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = 200
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = 45 * time.Second
	}

	deadline := time.Now().Add(opts.MaxDuration)
	scrolled := 0

	for step := 0; step < opts.MaxSteps; step++ {
		if time.Now().After(deadline) {
			break
		}

		var height int
		if err := chromedp.Run(s.ctx,
			chromedp.Evaluate(`document.body.scrollHeight`, &height),
		); err != nil {
			return fmt.Errorf("reading scroll height: %w", err)
		}
		if scrolled >= height {
			break
		}

		if err := chromedp.Run(s.ctx,
			chromedp.Evaluate(fmt.Sprintf(`window.scrollBy(0, %d)`, opts.Step), nil),
			chromedp.Sleep(opts.Interval),
		); err != nil {
			return fmt.Errorf("scrolling: %w", err)
		}
		scrolled += opts.Step
	}
	return nil
}
