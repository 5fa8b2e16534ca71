package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rtanksbot/internal/domain/entity"
)

// Per-field candidate lists. Candidates are tried in order and the
// first hit wins; an exhausted list leaves the field at its default.

type intMatcher func(d *document) (int, bool)

type stringMatcher func(d *document) (string, bool)

func firstInt(d *document, matchers []intMatcher) (int, bool) {
	for _, m := range matchers {
		if v, ok := m(d); ok {
			return v, true
		}
	}
	return 0, false
}

func firstString(d *document, matchers []stringMatcher) (string, bool) {
	for _, m := range matchers {
		if v, ok := m(d); ok {
			return v, true
		}
	}
	return "", false
}

var thousandSeparators = strings.NewReplacer(",", "", " ", "")

func stripSeparators(s string) string {
	return thousandSeparators.Replace(s)
}

// reInt lifts a single-capture regex into an int candidate.
func reInt(pattern string) intMatcher {
	re := regexp.MustCompile(pattern)
	return func(d *document) (int, bool) {
		m := re.FindStringSubmatch(d.raw)
		if m == nil {
			return 0, false
		}
		n, err := strconv.Atoi(stripSeparators(m[1]))
		if err != nil {
			return 0, false
		}
		return n, true
	}
}

var killMatchers = []intMatcher{
	reInt(`(?i)kills?[:\s]*(\d{1,3}(?:[,\s]\d{3})*)`),
	reInt(`(?i)Убийства[:\s]*(\d{1,3}(?:[,\s]\d{3})*)`),
	reInt(`(?i)"kills"[:\s]*(\d{1,3}(?:[,\s]\d{3})*)`),
}

var deathMatchers = []intMatcher{
	reInt(`(?i)deaths?[:\s]*(\d{1,3}(?:[,\s]\d{3})*)`),
	reInt(`(?i)Смерти[:\s]*(\d{1,3}(?:[,\s]\d{3})*)`),
	reInt(`(?i)"deaths"[:\s]*(\d{1,3}(?:[,\s]\d{3})*)`),
}

var goldBoxMatchers = []intMatcher{
	reInt(`(?i)gold[^0-9]*boxes?[:\s]*(\d+)`),
	reInt(`(?i)Золотые[^0-9]*коробки[:\s]*(\d+)`),
	reInt(`(?i)"gold_boxes"[:\s]*(\d+)`),
}

var singleExperienceMatchers = []intMatcher{
	reInt(`(?i)Experience[^0-9]*(\d{1,3}(?:,?\d{3})*)`),
	reInt(`(?i)Опыт[^0-9]*(\d{1,3}(?:,?\d{3})*)`),
	reInt(`(?i)"experience"[^0-9]*(\d{1,3}(?:,?\d{3})*)`),
}

// The current/total pair accepts space, comma or no thousands grouping.
var experiencePairRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,3}(?:\s?\d{3})*)\s*/\s*(\d{1,3}(?:\s?\d{3})*)`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*/\s*(\d{1,3}(?:,\d{3})*)`),
	regexp.MustCompile(`(\d+)\s*/\s*(\d+)`),
}

func matchExperiencePair(d *document) (current, max int, ok bool) {
	for _, re := range experiencePairRes {
		m := re.FindStringSubmatch(d.raw)
		if m == nil {
			continue
		}

		current, errCur := strconv.Atoi(stripSeparators(m[1]))
		max, errMax := strconv.Atoi(stripSeparators(m[2]))
		if errCur != nil || errMax != nil {
			continue
		}

		return current, max, true
	}
	return 0, 0, false
}

// Rank tokens are scanned in strict descending seniority, each tier a
// bilingual alternation. Legend may carry a trailing level number.
type rankToken struct {
	canonical string
	re        *regexp.Regexp
}

var rankTokens = buildRankTokens()

func buildRankTokens() []rankToken {
	tokens := make([]rankToken, 0, len(entity.Ladder))

	for i := len(entity.Ladder) - 1; i >= 0; i-- {
		name := entity.Ladder[i]

		pattern := regexp.QuoteMeta(name)
		if alias, ok := entity.AliasFor(name); ok {
			pattern = regexp.QuoteMeta(alias) + "|" + pattern
		}

		if name == "Legend" {
			tokens = append(tokens, rankToken{
				canonical: name,
				re:        regexp.MustCompile(`(?i)(` + pattern + `)\s*(\d*)`),
			})
			continue
		}

		tokens = append(tokens, rankToken{
			canonical: name,
			re:        regexp.MustCompile(`(?i)(` + pattern + `)`),
		})
	}

	return tokens
}

func matchRankToken(d *document) (string, bool) {
	for _, t := range rankTokens {
		m := t.re.FindStringSubmatch(d.raw)
		if m == nil {
			continue
		}

		if t.canonical == "Legend" && len(m) > 2 && m[2] != "" {
			return entity.LegendLabel(m[2]), true
		}

		return t.canonical, true
	}

	return "", false
}

var premiumMarkers = []string{
	"premium",
	"премиум",
	`"premium": true`,
}

// matchPremium is position-insensitive: any marker anywhere counts.
func matchPremium(d *document) bool {
	for _, marker := range premiumMarkers {
		if strings.Contains(d.lower, marker) {
			return true
		}
	}
	return false
}

var displayNoneRe = regexp.MustCompile(`(?i)display:\s*none`)

// matchOnline reads the activity marker: a non-displayable span whose
// text is exactly yes/no. When no hidden span carries the marker, any
// span with standalone yes/no text decides. Default offline.
func matchOnline(d *document) bool {
	online, found := onlineFromSpans(d, true)
	if found {
		return online
	}

	online, _ = onlineFromSpans(d, false)
	return online
}

func onlineFromSpans(d *document, hiddenOnly bool) (online, found bool) {
	d.dom.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if hiddenOnly {
			style, ok := s.Attr("style")
			if !ok || !displayNoneRe.MatchString(style) {
				return true
			}
		}

		switch strings.ToLower(strings.TrimSpace(s.Text())) {
		case "yes":
			online, found = true, true
			return false
		case "no":
			online, found = false, true
			return false
		}
		return true
	})

	return online, found
}

// Group values equal to a known placeholder are treated as no-match so
// the scan moves on to the next candidate.
var rejectedGroupValues = map[string]struct{}{
	"unknown": {},
	"none":    {},
	"null":    {},
	"":        {},
}

func reGroup(pattern string) stringMatcher {
	re := regexp.MustCompile(pattern)
	return func(d *document) (string, bool) {
		m := re.FindStringSubmatch(d.raw)
		if m == nil {
			return "", false
		}

		value := strings.TrimSpace(m[1])
		if _, rejected := rejectedGroupValues[strings.ToLower(value)]; rejected {
			return "", false
		}

		return value, true
	}
}

var groupMatchers = []stringMatcher{
	reGroup(`(?i)group[:\s]*([^<\n\r]+)`),
	reGroup(`(?i)clan[:\s]*([^<\n\r]+)`),
	reGroup(`(?i)Группа[:\s]*([^<\n\r]+)`),
	reGroup(`(?i)"group"[:\s]*"([^"]+)"`),
}
