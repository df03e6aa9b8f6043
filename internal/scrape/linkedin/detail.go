package linkedin

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/util"
)

// ExtractJob visits one detail page and reads the full field set. A
// navigation failure is fatal to the run; a missing field is logged and
// left empty so every record keeps the same shape.
func (s *Scraper) ExtractJob(ctx context.Context, link string) (domain.JobRecord, error) {
	var rec domain.JobRecord

	if err := s.navigate(ctx, link); err != nil {
		return rec, fmt.Errorf("opening %s: %w", link, err)
	}

	authed := s.loggedIn()

	// Bounded wait for the top card to render.
	if err := s.sess.WaitVisible(detailFields[0].Sel.For(authed)); err != nil {
		log.Printf("[detail] %s: title not visible: %v", link, err)
	}

	if s.sess.ClickIfExists(seeMore.For(authed)) {
		// Give the expanded description a moment to render.
		if err := s.sess.WaitVisible(detailFields[4].Sel.For(authed)); err != nil {
			log.Printf("[detail] %s: description after expand: %v", link, err)
		}
	}

	if err := s.scroll(); err != nil {
		log.Printf("[detail] %s scroll: %v", link, err)
	}

	html, err := s.sess.OuterHTML()
	if err != nil {
		return rec, fmt.Errorf("reading %s: %w", link, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return rec, fmt.Errorf("parsing %s: %w", link, err)
	}

	rec, missing := ExtractRecord(doc, authed)
	if len(missing) > 0 {
		log.Printf("[detail] %s: empty fields: %s", link, strings.Join(missing, ", "))
	}
	return rec, nil
}

// ExtractRecord reads every detail field from a parsed document using
// the selector variant for the given login state. It also returns the
// names of fields that came back empty, for logging.
func ExtractRecord(doc *goquery.Document, authed bool) (domain.JobRecord, []string) {
	var rec domain.JobRecord
	var missing []string

	for _, f := range detailFields {
		var value string
		if f.List {
			value = flattenField(doc, f.Sel.For(authed))
		} else {
			value = util.CleanText(doc.Find(f.Sel.For(authed)).First().Text())
		}
		rec.Set(f.Name, value)
		if value == "" {
			missing = append(missing, f.Name)
		}
	}
	return rec, missing
}

// flattenField handles list-valued fields. A single matched node that
// is itself a container yields its own text; multiple sibling matches
// are joined with ", ".
func flattenField(doc *goquery.Document, sel string) string {
	nodes := doc.Find(sel)
	if nodes.Length() == 0 {
		return ""
	}
	if nodes.First().Children().Length() == 0 && nodes.Length() > 1 {
		var parts []string
		nodes.Each(func(_ int, n *goquery.Selection) {
			if t := util.CleanText(n.Text()); t != "" {
				parts = append(parts, t)
			}
		})
		return strings.Join(parts, ", ")
	}
	return util.CleanText(nodes.First().Text())
}
