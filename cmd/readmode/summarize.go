package main

import (
	"fmt"

	"github.com/fwojciec/readmode"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(err))
		return err
	}

	doc, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(err))
		return err
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, readmode.FormatText(doc), readmode.SummaryStyle(c.Style))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
