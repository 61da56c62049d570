package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/domsel/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/domains-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("domains-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports entries to Netscape bookmark HTML format, grouped into
// one folder per status. at is written as the ADD_DATE of every link.
func ExportHTML(entries []model.Entry, at time.Time) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Domains</TITLE>\n")
	b.WriteString("<H1>Domains</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, status := range []model.Status{model.StatusProcessed, model.StatusPending, model.StatusError} {
		writeGroup(&b, entries, status, at.Unix())
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeGroup writes the entries with the given status as a folder.
// Empty groups are omitted.
func writeGroup(b *strings.Builder, entries []model.Entry, status model.Status, addDate int64) {
	prefix := "    "

	var group []model.Entry
	for _, e := range entries {
		if e.Status == status {
			group = append(group, e)
		}
	}
	if len(group) == 0 {
		return
	}

	fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(status.Label()))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)
	for _, e := range group {
		fmt.Fprintf(b,
			"%s    <DT><A HREF=\"%s\" ADD_DATE=\"%d\" DATA-STATUS=\"%s\">%s</A>\n",
			prefix,
			html.EscapeString(e.URL),
			addDate,
			e.Status,
			html.EscapeString(e.URL),
		)
	}
	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}

// WriteFile exports entries to path, creating the directory if needed.
func WriteFile(path string, entries []model.Entry, at time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(ExportHTML(entries, at)), 0644)
}
