package main

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/domindex"
	domhtml "github.com/fwojciec/domindex/html"
	"github.com/fwojciec/domindex/mem"
)

// queryOutput is the printed shape for one filtered lookup.
type queryOutput struct {
	FilterType  string `json:"filterType"`
	FilterValue string `json:"filterValue"`
	Count       int    `json:"count"`
	Entries     any    `json:"entries"`
}

// Run indexes the file and prints entries matching the requested filter.
// Without a filter the whole result is printed. A lookup that matches
// nothing prints an empty entry list; it is not an error.
func (cmd *QueryCmd) Run(deps *Dependencies) error {
	rawHTML, err := readInput(deps, cmd.Path)
	if err != nil {
		return err
	}

	indexer := domhtml.NewIndexer()
	result, _, err := deps.Cache.GetOrBuild(deps.Ctx, mem.SourceKey(cmd.Path), func(ctx context.Context) (*domindex.Result, error) {
		return buildResult(indexer, deps.Summarizer, rawHTML, cmd.Base, cmd.Path)
	})
	if err != nil {
		return err
	}
	idx := result.Index

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")

	var out queryOutput
	switch {
	case cmd.Tag != "":
		els := idx.ElementsByTag(cmd.Tag)
		out = queryOutput{FilterType: "tag", FilterValue: cmd.Tag, Count: len(els), Entries: els}
	case cmd.Class != "":
		els := idx.ElementsByClass(cmd.Class)
		out = queryOutput{FilterType: "class", FilterValue: cmd.Class, Count: len(els), Entries: els}
	case cmd.ID != "":
		out = queryOutput{FilterType: "id", FilterValue: cmd.ID, Entries: []*domindex.Element{}}
		if el, ok := idx.ElementByID(cmd.ID); ok {
			out.Count = 1
			out.Entries = []*domindex.Element{el}
		}
	case cmd.XPath != "":
		out = queryOutput{FilterType: "path", FilterValue: cmd.XPath, Entries: []*domindex.Element{}}
		if el, ok := idx.ElementByPath(cmd.XPath); ok {
			out.Count = 1
			out.Entries = []*domindex.Element{el}
		}
	case cmd.Collection != "":
		out = queryOutput{FilterType: "collection", FilterValue: cmd.Collection}
		switch cmd.Collection {
		case "links":
			out.Count = len(idx.Links)
			out.Entries = idx.Links
		case "images":
			out.Count = len(idx.Images)
			out.Entries = idx.Images
		case "headings":
			out.Count = len(idx.Headings)
			out.Entries = idx.Headings
		case "tables":
			out.Count = len(idx.Tables)
			out.Entries = idx.Tables
		case "forms":
			out.Count = len(idx.Forms)
			out.Entries = idx.Forms
		case "text":
			out.Count = len(idx.TextContent)
			out.Entries = idx.TextContent
		}
	default:
		return enc.Encode(result)
	}

	return enc.Encode(out)
}
