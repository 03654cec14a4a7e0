package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/batch"
)

// extractResult is one entry of the JSON array printed for several URLs.
type extractResult struct {
	URL       string             `json:"url"`
	Document  *readmode.Document `json:"document,omitempty"`
	Duplicate bool               `json:"duplicate,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Runner.Concurrency = c.Concurrency
	}

	progress := func(event batch.ProgressEvent) {
		if event.Type == batch.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, readmode.ErrorMessage(event.Error))
		}
	}

	results := deps.Runner.Run(deps.Ctx, c.URLs, progress)

	if deps.Store != nil {
		return c.save(deps, results)
	}

	if len(results) == 1 {
		res := results[0]
		if res.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(res.Err))
			return res.Err
		}
		return c.print(deps, res.Document)
	}

	var failed int
	if c.Format != "json" {
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
			if res.Document == nil {
				continue
			}
			if err := c.print(deps, res.Document); err != nil {
				return err
			}
		}
	} else {
		out := make([]extractResult, 0, len(results))
		for _, res := range results {
			r := extractResult{URL: res.URL, Document: res.Document, Duplicate: res.Duplicate}
			if res.Err != nil {
				failed++
				r.Error = readmode.ErrorMessage(res.Err)
			}
			out = append(out, r)
		}
		if err := writeJSON(deps, out); err != nil {
			return err
		}
	}

	if failed == len(results) {
		return readmode.Errorf(readmode.EUNAVAILABLE, "all %d pages failed", failed)
	}
	return nil
}

// save writes every extracted document to deps.Store. Nothing is committed
// unless all saves succeed.
func (c *ExtractCmd) save(deps *Dependencies, results []batch.Result) error {
	var saved, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if res.Document == nil {
			continue
		}
		if err := deps.Store.Save(deps.Ctx, res.Document); err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(err))
			return err
		}
		saved++
	}

	if saved == 0 {
		_ = deps.Store.Abort()
		return readmode.Errorf(readmode.EUNAVAILABLE, "all %d pages failed", failed)
	}
	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d documents to %s (%d failed)\n", saved, c.Out, failed)
	return nil
}

func (c *ExtractCmd) print(deps *Dependencies, doc *readmode.Document) error {
	switch c.Format {
	case "text":
		fmt.Fprintln(deps.Stdout, readmode.FormatText(doc))
		return nil
	case "html":
		page, err := deps.Renderer.Render(doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, page)
		return nil
	}
	return writeJSON(deps, doc)
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
