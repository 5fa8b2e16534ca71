package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rtanksbot/internal/domain/entity"
)

// The site serves profile-shaped stub pages for names that do not
// exist, so a 200 response proves nothing. Classification is a
// short-circuit chain of predicates: three rejection classes first,
// then a required positive signal of real data.

const (
	shortErrorPageSize   = 5000
	shortGenericPageSize = 3000
)

var (
	genericErrorRe = regexp.MustCompile(`(?i)404|not found|error`)

	profileClassRe = regexp.MustCompile(`(?i)profile|user-info|player-card`)
	profileIDRe    = regexp.MustCompile(`(?i)profile|user|player`)
	profileLabelRe = regexp.MustCompile(`(?i)Activity|Активность|Combat Stats|Статистика боя`)

	templateDataRes = []*regexp.Regexp{
		regexp.MustCompile(`14/400`),
		regexp.MustCompile(`(?s)Kills:\s*0.*Deaths:\s*0.*K/D:\s*0\.00`),
		regexp.MustCompile(`Group:\s*Unknown`),
		regexp.MustCompile(`(?s)Recruit.*14/400`),
	}

	nonZeroKillsRe  = regexp.MustCompile(`(?i)kills?[:\s]*[1-9]\d*`)
	nonZeroDeathsRe = regexp.MustCompile(`(?i)deaths?[:\s]*[1-9]\d*`)
	expPairSignalRe = regexp.MustCompile(`(\d{1,3}(?:\s?\d{3})*)\s*/\s*(\d{1,3}(?:\s?\d{3})*)`)
)

// classify reports whether the document is a genuine profile page.
func classify(d *document) bool {
	if hasErrorMarker(d) {
		return false
	}
	if !hasProfileStructure(d) {
		return false
	}
	if hasTemplateData(d) {
		return false
	}
	return hasPositiveSignal(d)
}

// hasErrorMarker detects explicit error pages: literal not-found text
// in either language, or a short document with a generic error marker.
func hasErrorMarker(d *document) bool {
	switch {
	case strings.Contains(d.lower, "player not found"):
		return true
	case strings.Contains(d.lower, "user not found"):
		return true
	case strings.Contains(d.lower, "пользователь не найден"):
		return true
	case strings.Contains(d.lower, "not found") && len(d.raw) < shortErrorPageSize:
		return true
	case strings.Contains(d.raw, "404") && strings.Contains(d.lower, "error"):
		return true
	case len(d.raw) < shortGenericPageSize && genericErrorRe.MatchString(visibleText(d)):
		return true
	}
	return false
}

// hasProfileStructure requires at least one element that looks like a
// profile container or a stats section label.
func hasProfileStructure(d *document) bool {
	found := false

	d.dom.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if class, ok := s.Attr("class"); ok && profileClassRe.MatchString(class) {
			found = true
			return false
		}
		if id, ok := s.Attr("id"); ok && profileIDRe.MatchString(id) {
			found = true
			return false
		}
		return true
	})

	if found {
		return true
	}

	return profileLabelRe.MatchString(visibleText(d))
}

// hasTemplateData detects the fixed default values the site renders on
// auto-generated stub pages. Any one of them condemns the document.
func hasTemplateData(d *document) bool {
	for _, re := range templateDataRes {
		if re.MatchString(d.raw) {
			return true
		}
	}
	return false
}

// hasPositiveSignal requires at least one sign of real data beyond the
// stub defaults: a non-zero combat stat, an experience pair whose
// current value is not the template default, or any rank token above
// the lowest tier.
func hasPositiveSignal(d *document) bool {
	if nonZeroKillsRe.MatchString(d.raw) || nonZeroDeathsRe.MatchString(d.raw) {
		return true
	}

	if m := expPairSignalRe.FindStringSubmatch(d.raw); m != nil {
		if stripSeparators(m[1]) != "14" {
			return true
		}
	}

	for _, t := range rankTokens {
		if t.canonical == entity.LowestRank {
			continue
		}
		if t.re.MatchString(d.raw) {
			return true
		}
	}

	return false
}

func visibleText(d *document) string {
	return d.dom.Text()
}
