// Package scraper is the extraction engine for RTanks ratings pages.
//
// Extraction is best-effort pattern matching over an uncontrolled HTML
// document: every field is recovered through an ordered list of matcher
// candidates, first match wins, no match leaves the documented default.
// The engine is pure computation — same document and username in, same
// record out.
package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rtanksbot/internal/domain"
	"rtanksbot/internal/domain/entity"
)

// document bundles the raw markup with its parsed DOM. Regex candidates
// run over the raw text, structural candidates over the DOM.
type document struct {
	raw   string
	lower string
	dom   *goquery.Document
}

func parseDocument(html string) (*document, error) {
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	return &document{
		raw:   html,
		lower: strings.ToLower(html),
		dom:   dom,
	}, nil
}

// Extract decides whether html is a genuine profile page for username
// and, if so, recovers a complete PlayerRecord from it. Every other
// outcome — error page, stub page, template data, malformed markup —
// is domain.ErrPlayerNotFound. It never returns a partial record.
func Extract(html, username string) (*entity.PlayerRecord, error) {
	doc, err := parseDocument(html)
	if err != nil {
		// Malformed markup folds into not-found, per the engine's
		// binary contract.
		return nil, domain.ErrPlayerNotFound
	}

	if !classify(doc) {
		return nil, domain.ErrPlayerNotFound
	}

	record := &entity.PlayerRecord{
		Username: username,
		Rank:     entity.LowestRank,
		KDRatio:  "0.00",
		Group:    entity.GroupUnknown,
	}

	record.IsOnline = matchOnline(doc)

	// Experience first: rank derivation below may need it.
	if cur, max, ok := matchExperiencePair(doc); ok {
		record.Experience = cur
		record.MaxExperience = max
	} else if exp, ok := firstInt(doc, singleExperienceMatchers); ok {
		record.Experience = exp
	}

	if rank, ok := matchRankToken(doc); ok {
		record.Rank = rank
	} else if record.Experience > 0 {
		record.Rank = entity.RankFromExperience(record.Experience)
	}

	if kills, ok := firstInt(doc, killMatchers); ok {
		record.Kills = kills
	}
	if deaths, ok := firstInt(doc, deathMatchers); ok {
		record.Deaths = deaths
	}
	record.KDRatio = entity.KDRatio(record.Kills, record.Deaths)

	if gold, ok := firstInt(doc, goldBoxMatchers); ok {
		record.GoldBoxes = gold
	}

	record.Premium = matchPremium(doc)

	if group, ok := firstString(doc, groupMatchers); ok {
		record.Group = group
	}

	record.Equipment = matchEquipment(doc)

	return record, nil
}
