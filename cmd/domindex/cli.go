package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/domindex"
	domhtml "github.com/fwojciec/domindex/html"
	"golang.org/x/net/html"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Cache      domindex.ResultCache
	Sessions   domindex.SessionStore
	Summarizer domindex.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`
	Enrich  bool `help:"Use trafilatura metadata extraction for title and description"`

	Index IndexCmd `cmd:"" help:"Index HTML files and print each result as JSON"`
	Query QueryCmd `cmd:"" help:"Index one HTML file and print matching entries"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Paths       []string `arg:"" help:"HTML files to index ('-' for stdin)"`
	Base        string   `short:"b" default:"" help:"Base URL for resolving relative references"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent indexing limit"`
	MaxNodes    int      `default:"0" help:"Maximum nodes per document (0 uses the built-in cap)"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Path       string `arg:"" help:"HTML file to index ('-' for stdin)"`
	Base       string `short:"b" default:"" help:"Base URL for resolving relative references"`
	Tag        string `help:"Filter elements by exact tag"`
	Class      string `help:"Filter elements by exact class string"`
	ID         string `name:"id" help:"Look up one element by id"`
	XPath      string `name:"path" help:"Look up one element by structural path"`
	Collection string `enum:"links,images,headings,tables,forms,text," default:"" help:"Print one specialized collection"`
}

// buildResult parses, indexes, and summarizes one document.
func buildResult(indexer *domhtml.Indexer, summarizer domindex.Summarizer, rawHTML, baseURL, source string) (*domindex.Result, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, domindex.Errorf(domindex.EINVALID, "failed to parse %s: %v", source, err)
	}
	idx, err := indexer.Build(doc, baseURL)
	if err != nil {
		return nil, err
	}
	meta, stats, err := summarizer.Summarize(rawHTML, idx, source)
	if err != nil {
		return nil, err
	}
	return &domindex.Result{Meta: meta, Index: idx, Stats: stats}, nil
}

// readInput reads an HTML file, or stdin for "-".
func readInput(deps *Dependencies, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
