package main

import (
	"fmt"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/goquery"
)

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(err))
		return err
	}

	region, err := goquery.MainContentHTML(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(region, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readmode.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
