package importer_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/domsel/internal/importer"
	"github.com/nikbrunner/domsel/internal/model"
)

func TestParseHTML_SingleLink(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1700000000">Example Site</A>
</DL><p>`

	entries, err := importer.ParseHTMLEntries(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.URL != "https://example.com" {
		t.Errorf("expected URL 'https://example.com', got %q", e.URL)
	}
	if e.ID != 1 {
		t.Errorf("expected ID 1, got %d", e.ID)
	}
	if e.Status != model.StatusPending {
		t.Errorf("expected pending status, got %q", e.Status)
	}
	if e.Timestamp != "Nov 14, 2023" {
		t.Errorf("expected timestamp from ADD_DATE, got %q", e.Timestamp)
	}
}

func TestParseHTML_NestedFoldersAreFlattened(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>Development</H3>
    <DL><p>
        <DT><H3>React</H3>
        <DL><p>
            <DT><A HREF="https://react.dev">React Docs</A>
        </DL><p>
        <DT><A HREF="https://github.com">GitHub</A>
    </DL><p>
    <DT><A HREF="https://google.com">Google</A>
</DL><p>`

	entries, err := importer.ParseHTMLEntries(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"https://react.dev", "https://github.com", "https://google.com"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, url := range want {
		if entries[i].URL != url {
			t.Errorf("entry %d: expected %q, got %q", i, url, entries[i].URL)
		}
		if entries[i].ID != int64(i+1) {
			t.Errorf("entry %d: expected ID %d, got %d", i, i+1, entries[i].ID)
		}
		if entries[i].Timestamp != importer.ImportedTimestamp {
			t.Errorf("entry %d: expected %q timestamp, got %q", i, importer.ImportedTimestamp, entries[i].Timestamp)
		}
	}
}

func TestParseHTML_SkipsEmptyHref(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="">Nothing</A>
    <DT><A>No href</A>
    <DT><A HREF="  www.rappi.com  ">Rappi</A>
</DL><p>`

	entries, err := importer.ParseHTMLEntries(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].URL != "www.rappi.com" {
		t.Errorf("expected trimmed URL, got %q", entries[0].URL)
	}
}

func TestParseHTML_ReadsStatusAttribute(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="www.github.com" DATA-STATUS="error">github</A>
    <DT><A HREF="www.rappi.com" data-status="processed">rappi</A>
    <DT><A HREF="www.google.com" data-status="bogus">google</A>
</DL><p>`

	entries, err := importer.ParseHTMLEntries(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.Status{model.StatusError, model.StatusProcessed, model.StatusPending}
	for i, status := range want {
		if entries[i].Status != status {
			t.Errorf("entry %d: expected %q, got %q", i, status, entries[i].Status)
		}
	}
}

func TestParseHTML_Empty(t *testing.T) {
	entries, err := importer.ParseHTMLEntries(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}
