package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/domsel/internal/logging"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, rootCmd.Use, "domsel")
	assert.Assert(t, rootCmd.Short != "")

	for _, name := range []string{"config", "import", "log-file"} {
		assert.Assert(t, rootCmd.PersistentFlags().Lookup(name) != nil, "missing --%s", name)
	}
	for _, name := range []string{"delay", "failure-rate", "print"} {
		assert.Assert(t, rootCmd.Flags().Lookup(name) != nil, "missing --%s", name)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"list", "pick", "export"} {
		assert.Assert(t, names[want], "expected %s subcommand", want)
	}
}

// run executes the CLI with an isolated config file and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(logging.EnvLogFile, "")

	dir := t.TempDir()
	args = append([]string{"--config", filepath.Join(dir, "config.json")}, args...)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		importPath = ""
		_ = listCmd.Flags().Set("status", "")
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestList_DefaultSeeds(t *testing.T) {
	out, err := run(t, "list")
	assert.NilError(t, err)

	assert.Assert(t, is.Contains(out, "www.rappi.com"))
	assert.Assert(t, is.Contains(out, "www.google.com"))
	assert.Assert(t, is.Contains(out, "www.github.com"))
	assert.Assert(t, is.Contains(out, "Processed"))
}

func TestList_StatusFilter(t *testing.T) {
	out, err := run(t, "list", "--status", "error")
	assert.NilError(t, err)

	assert.Assert(t, is.Contains(out, "www.github.com"))
	assert.Assert(t, !bytes.Contains([]byte(out), []byte("www.rappi.com")))
}

func TestList_InvalidStatus(t *testing.T) {
	_, err := run(t, "list", "--status", "done")
	assert.ErrorContains(t, err, "done")
}

func TestList_Import(t *testing.T) {
	htmlPath := filepath.Join(t.TempDir(), "bookmarks.html")
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
<DT><A HREF="news.ycombinator.com">HN</A>
<DT><A HREF="www.google.com">Google</A>
</DL><p>`
	assert.NilError(t, os.WriteFile(htmlPath, []byte(html), 0644))

	out, err := run(t, "list", "--import", htmlPath)
	assert.NilError(t, err)

	assert.Assert(t, is.Contains(out, "news.ycombinator.com"))
	assert.Equal(t, bytes.Count([]byte(out), []byte("www.google.com")), 1, "duplicate URLs are skipped")
}

func TestList_ImportMissingFile(t *testing.T) {
	_, err := run(t, "list", "--import", filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorContains(t, err, "failed to open import file")
}

func TestExport_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	out, err := run(t, "export", path)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "Exported 3 URLs"))

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "www.rappi.com"))
}

func TestPick_SingleMatchPrintsURL(t *testing.T) {
	out, err := run(t, "pick", "rappi")
	assert.NilError(t, err)
	assert.Equal(t, out, "www.rappi.com\n")
}

func TestPick_NoMatch(t *testing.T) {
	out, err := run(t, "pick", "zzzz")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "No URLs found for 'zzzz'"))
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := run(t, "unexpected")
	assert.Assert(t, err != nil)
}
