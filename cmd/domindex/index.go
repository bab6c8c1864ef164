package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/domindex"
	domhtml "github.com/fwojciec/domindex/html"
	"github.com/fwojciec/domindex/mem"
	"golang.org/x/sync/errgroup"
)

// indexOutput is the printed shape for one indexed document.
type indexOutput struct {
	Source string           `json:"source"`
	Slug   string           `json:"slug"`
	Cached bool             `json:"cached"`
	Result *domindex.Result `json:"result"`
}

// Run indexes each file concurrently, exposes every result under a fresh
// session id, and prints the outputs in argument order.
func (cmd *IndexCmd) Run(deps *Dependencies) error {
	indexer := domhtml.NewIndexer(domhtml.WithMaxNodes(cmd.MaxNodes))
	outputs := make([]indexOutput, len(cmd.Paths))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(cmd.Concurrency)
	for i, path := range cmd.Paths {
		i, path := i, path
		g.Go(func() error {
			rawHTML, err := readInput(deps, path)
			if err != nil {
				return err
			}
			result, hit, err := deps.Cache.GetOrBuild(ctx, mem.SourceKey(path), func(ctx context.Context) (*domindex.Result, error) {
				return buildResult(indexer, deps.Summarizer, rawHTML, cmd.Base, path)
			})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = indexOutput{
				Source: path,
				Slug:   deps.Sessions.Put(result),
				Cached: hit,
				Result: result,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	for _, out := range outputs {
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return nil
}
