package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"rtanksbot/internal/domain"
	"rtanksbot/internal/domain/entity"
)

var bigNumberRe = regexp.MustCompile(`(\d{1,3}(?:[,\s]\d{3})*)`)

// ExtractFromRankings is the degraded fallback path: the username was
// spotted on a listing or ranking page rather than a profile page.
// It walks from the matching text node out to the nearest enclosing
// row/list/block container and salvages a single big number as the
// experience value. All other fields stay at their defaults, and none
// of the profile classification runs — co-occurrence of the name and
// a number on a rankings page is taken at face value.
func ExtractFromRankings(htmlText, username string) (*entity.PlayerRecord, error) {
	doc, err := parseDocument(htmlText)
	if err != nil {
		return nil, domain.ErrPlayerNotFound
	}

	needle := strings.ToLower(username)

	for _, node := range textNodesContaining(doc.dom, needle) {
		container := enclosingContainer(node)
		if container == nil {
			continue
		}

		rowText := goquery.NewDocumentFromNode(container).Text()

		m := bigNumberRe.FindStringSubmatch(rowText)
		if m == nil {
			continue
		}

		experience, err := strconv.Atoi(stripSeparators(m[1]))
		if err != nil {
			continue
		}

		return &entity.PlayerRecord{
			Username:   username,
			Rank:       entity.LowestRank,
			Experience: experience,
			KDRatio:    "0.00",
			Group:      entity.GroupUnknown,
		}, nil
	}

	return nil, domain.ErrPlayerNotFound
}

func textNodesContaining(dom *goquery.Document, needle string) []*html.Node {
	var nodes []*html.Node

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && strings.Contains(strings.ToLower(n.Data), needle) {
			nodes = append(nodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, root := range dom.Nodes {
		walk(root)
	}

	return nodes
}

// enclosingContainer climbs to the nearest tr/li/div ancestor.
func enclosingContainer(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		switch p.Data {
		case "tr", "li", "div":
			return p
		}
	}
	return nil
}
