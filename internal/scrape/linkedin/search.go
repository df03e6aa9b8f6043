package linkedin

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobsweep/internal/scrape/util"
)

// ComputePageCount parses a results-count display string ("1,234
// results", "Showing 63 results") into ceil(N/25). Non-digit characters
// never affect the parse. A string with no digits means zero pages.
func ComputePageCount(display string) int {
	digits := util.DigitsOnly(display)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// CollectLinks walks every results page in order and returns the
// detail-page URLs in page-then-position order. Duplicates are kept.
// A page whose link selector matches nothing contributes an empty set;
// that is logged, never fatal.
func (s *Scraper) CollectLinks(ctx context.Context) ([]string, error) {
	if err := s.navigate(ctx, s.searchURL()); err != nil {
		return nil, fmt.Errorf("opening search results: %w", err)
	}

	authed := s.loggedIn()
	countSel := resultCount.For(authed)
	if err := s.sess.WaitVisible(countSel); err != nil {
		log.Printf("[search] results count not visible: %v", err)
	}
	display := s.sess.Text(countSel)
	pages := ComputePageCount(display)
	log.Printf("[search] count=%q pages=%d authed=%v", display, pages, authed)

	var links []string
	var prevLinks []string
	for page := 0; page < pages; page++ {
		// Re-check per page; a forced logout mid-run switches the markup.
		authed = s.loggedIn()

		if err := s.scroll(); err != nil {
			log.Printf("[search] page %d scroll: %v", page, err)
		}

		html, err := s.sess.OuterHTML()
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", page, err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("parsing page %d: %w", page, err)
		}

		pageLinks := ExtractLinks(doc, authed)
		if len(pageLinks) == 0 {
			log.Printf("[search] page %d: no links matched (markup change or empty page)", page)
		}
		if SamePage(prevLinks, pageLinks) {
			log.Printf("[search] page %d: identical to previous page, dropping re-harvest", page)
		} else {
			links = append(links, pageLinks...)
			prevLinks = pageLinks
		}

		// No next-page click on the final page.
		if page < pages-1 {
			if err := s.limiter.Wait(ctx); err != nil {
				return links, err
			}
			linkSel := resultLinks.For(authed)
			prevFirst := s.sess.AttrOf(linkSel, "href")
			if !s.sess.ClickIfExists(nextPage.For(authed)) {
				log.Printf("[search] page %d: next-page control missing, stopping early", page)
				break
			}
			// The outgoing page keeps rendering while the next one loads,
			// so wait for the first result href to change rather than for
			// result links to merely exist.
			if err := s.sess.WaitAttrChange(linkSel, "href", prevFirst); err != nil {
				log.Printf("[search] page %d: %v", page+1, err)
			}
		}
	}

	log.Printf("[search] collected %d links over %d pages", len(links), pages)
	return links, nil
}

// SamePage reports whether a page harvest is identical to the previous
// one, which means the next-page navigation did not actually advance
// and the links would be counted twice.
func SamePage(prev, cur []string) bool {
	if len(cur) == 0 || len(prev) != len(cur) {
		return false
	}
	for i := range cur {
		if prev[i] != cur[i] {
			return false
		}
	}
	return true
}

// ExtractLinks pulls detail-page hrefs from a results page document,
// using the selector variant for the given login state. Relative hrefs
// are made absolute; order is document order, duplicates kept.
func ExtractLinks(doc *goquery.Document, authed bool) []string {
	var out []string
	doc.Find(resultLinks.For(authed)).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = "https://www.linkedin.com" + href
		}
		out = append(out, href)
	})
	return out
}
