package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/domindex/cmd/domindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHTMLFile writes content to a temp file and returns its path.
func writeHTMLFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const samplePage = `<html><head>
	<title>Sample</title>
	<meta name="description" content="A sample page.">
</head><body>
	<h1>Welcome</h1>
	<p>Hello world from the sample page</p>
	<a href="/about">About us</a>
</body></html>`

func TestCmdIndex(t *testing.T) {
	t.Parallel()

	t.Run("indexes a file and prints the result with a slug", func(t *testing.T) {
		t.Parallel()

		path := writeHTMLFile(t, samplePage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"index", path, "--base", "https://example.com/"}, stdout, stderr)

		require.NoError(t, err)

		var out struct {
			Slug   string `json:"slug"`
			Cached bool   `json:"cached"`
			Result struct {
				Meta struct {
					Title string `json:"title"`
				} `json:"meta"`
				Stats struct {
					ElementCount int      `json:"elementCount"`
					LinkCount    int      `json:"linkCount"`
					DistinctTags []string `json:"distinctTags"`
				} `json:"stats"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))

		assert.Regexp(t, "^[0-9a-f]{16}$", out.Slug)
		assert.False(t, out.Cached)
		assert.Equal(t, "Sample", out.Result.Meta.Title)
		assert.Equal(t, 1, out.Result.Stats.LinkCount)
		assert.Contains(t, out.Result.Stats.DistinctTags, "a")
		assert.Contains(t, stdout.String(), "https://example.com/about")
	})

	t.Run("reads from stdin", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Stdin = strings.NewReader(samplePage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"index", "-", "--base", "https://example.com/"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"slug"`)
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"index", "/nonexistent/page.html"}, stdout, stderr)

		require.Error(t, err)
	})
}

func TestCmdQuery(t *testing.T) {
	t.Parallel()

	t.Run("filters by tag", func(t *testing.T) {
		t.Parallel()

		path := writeHTMLFile(t, samplePage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"query", path, "--tag", "p"}, stdout, stderr)

		require.NoError(t, err)

		var out struct {
			FilterType string `json:"filterType"`
			Count      int    `json:"count"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Equal(t, "tag", out.FilterType)
		assert.Equal(t, 1, out.Count)
	})

	t.Run("prints the links collection", func(t *testing.T) {
		t.Parallel()

		path := writeHTMLFile(t, samplePage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"query", path, "--base", "https://example.com/", "--collection", "links"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://example.com/about")
		assert.Contains(t, stdout.String(), "About us")
	})

	t.Run("path miss is an empty result, not an error", func(t *testing.T) {
		t.Parallel()

		path := writeHTMLFile(t, samplePage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"query", path, "--path", "/body[1]/div[99]"}, stdout, stderr)

		require.NoError(t, err)

		var out struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Equal(t, 0, out.Count)
	})
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
