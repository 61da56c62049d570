package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/domsel/internal/model"
	"golang.org/x/net/html"
)

// ImportedTimestamp is shown for links that carry no ADD_DATE.
const ImportedTimestamp = "imported"

// StatusAttr is the attribute the exporter writes the entry status to.
const StatusAttr = "data-status"

// ParseHTMLEntries parses Netscape bookmark HTML into entries.
// Folder structure is flattened; every link becomes one entry with ids 1..n.
// Links without an HREF are skipped.
func ParseHTMLEntries(r io.Reader) ([]model.Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []model.Entry

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "a" {
			url, err := model.NormalizeURL(getAttr(n, "href"))
			if err != nil {
				return
			}

			status := model.StatusPending
			if parsed, err := model.ParseStatus(getAttr(n, StatusAttr)); err == nil {
				status = parsed
			}

			entries = append(entries, model.Entry{
				ID:        int64(len(entries) + 1),
				URL:       url,
				Status:    status,
				Timestamp: addDate(n),
			})
			return // Don't recurse into A
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return entries, nil
}

// addDate renders the ADD_DATE attribute as a date, if present.
func addDate(n *html.Node) string {
	raw := getAttr(n, "add_date")
	if raw == "" {
		return ImportedTimestamp
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ImportedTimestamp
	}
	return time.Unix(ts, 0).UTC().Format("Jan 2, 2006")
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
