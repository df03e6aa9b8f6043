package linkedin

import "fmt"

// LinkedIn serves two markup variants for the same semantic content
// depending on whether the session is authenticated. Every selector the
// scraper touches is declared here as an {authed, anon} pair and picked
// once per navigation, after re-checking login state, since the site
// can force-log-out a session it suspects of automation mid-run.

const (
	loginURL      = "https://www.linkedin.com/login"
	searchBaseURL = "https://www.linkedin.com/jobs/search/"

	// Results pages show 25 listings each.
	PageSize = 25

	// Navbar profile photo; only present when logged in.
	profilePhotoSelector = `img.global-nav__me-photo`

	loginEmailSelector    = `#username`
	loginPasswordSelector = `#password`
	loginSubmitSelector   = `button[type="submit"]`

	// Best-effort only. Image-challenge CAPTCHAs are not handled and the
	// click is never verified.
	captchaCheckboxSelector = `#recaptcha-anchor, div.recaptcha-checkbox-border`
)

type selectorPair struct {
	Authed string
	Anon   string
}

func (p selectorPair) For(authed bool) string {
	if authed {
		return p.Authed
	}
	return p.Anon
}

var (
	resultCount = selectorPair{
		Authed: `.jobs-search-results-list__subtitle span`,
		Anon:   `h1 span.results-context-header__job-count`,
	}
	resultLinks = selectorPair{
		Authed: `ul.scaffold-layout__list-container li a.job-card-container__link`,
		Anon:   `ul.jobs-search__results-list li a.base-card__full-link`,
	}
	nextPage = selectorPair{
		Authed: `button[aria-label="View next page"]`,
		Anon:   `button[aria-label="Next"]`,
	}
	seeMore = selectorPair{
		Authed: `button.jobs-description__footer-button`,
		Anon:   `button.show-more-less-html__button--more`,
	}
)

// detailField maps one JobRecord field to its selector pair. List
// fields flatten multiple matches (see flattenField).
type detailField struct {
	Name string
	Sel  selectorPair
	List bool
}

// detailFields is in domain.FieldNames order. The criteria entries key
// off the fixed position of LinkedIn's "job criteria" list: seniority
// level, employment type, job function, industries.
var detailFields = []detailField{
	{Name: "title", Sel: selectorPair{
		Authed: `.job-details-jobs-unified-top-card__job-title`,
		Anon:   `h1.top-card-layout__title`,
	}},
	{Name: "company", Sel: selectorPair{
		Authed: `.job-details-jobs-unified-top-card__company-name`,
		Anon:   `a.topcard__org-name-link`,
	}},
	{Name: "location", Sel: selectorPair{
		Authed: `.job-details-jobs-unified-top-card__primary-description-container .tvm__text:first-child`,
		Anon:   `span.topcard__flavor--bullet`,
	}},
	{Name: "datePosted", Sel: selectorPair{
		Authed: `.jobs-unified-top-card__posted-date`,
		Anon:   `span.posted-time-ago__text`,
	}},
	{Name: "description", Sel: selectorPair{
		Authed: `.jobs-description-content__text`,
		Anon:   `div.show-more-less-html__markup`,
	}},
	{Name: "seniorityLevel", Sel: criteriaPair(1)},
	{Name: "industries", Sel: criteriaPair(4), List: true},
	{Name: "employmentType", Sel: criteriaPair(2)},
	{Name: "jobFunctions", Sel: criteriaPair(3), List: true},
}

func criteriaPair(position int) selectorPair {
	return selectorPair{
		Authed: criteriaSelector(`ul.jobs-description__job-criteria-list`, `span.jobs-description__job-criteria-text`, position),
		Anon:   criteriaSelector(`ul.description__job-criteria-list`, `span.description__job-criteria-text`, position),
	}
}

func criteriaSelector(list, text string, position int) string {
	return fmt.Sprintf("%s li:nth-child(%d) %s", list, position, text)
}
