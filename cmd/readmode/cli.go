package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/batch"
	readmodehttp "github.com/fwojciec/readmode/http"
	rmmcp "github.com/fwojciec/readmode/mcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Fetcher    readmode.Fetcher
	Extractor  readmode.Extractor
	Converter  readmode.Converter
	Renderer   readmode.Renderer
	Store      readmode.DocumentStore
	Summarizer readmode.Summarizer
	Runner     *batch.Runner
	Server     *readmodehttp.Server
	MCPServer  *rmmcp.Server
	Transport  mcp.Transport
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout      time.Duration `default:"30s" help:"Page fetch timeout"`
	Verbose      bool          `short:"v" help:"Enable debug logging"`
	GeminiAPIKey string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key for summaries"`
	Model        string        `default:"gemini-2.5-flash" env:"READMODE_MODEL" help:"Gemini model used for summaries"`

	Extract   ExtractCmd   `cmd:"" help:"Extract the reading-mode document of one or more pages"`
	Markdown  MarkdownCmd  `cmd:"" help:"Print the main content of a page as Markdown"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a page"`
	Serve     ServeCmd     `cmd:"" help:"Run the HTTP API"`
	MCP       MCPCmd       `cmd:"" name:"mcp" help:"Serve reading-mode tools over MCP on stdin and stdout"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	Format      string   `short:"f" enum:"json,text,html" default:"json" help:"Output format (json, text, html)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent page limit"`
	RPS         float64  `name:"rps" default:"2" help:"Requests per second per domain"`
	Out         string   `short:"o" type:"path" help:"Write documents as text files under this directory instead of printing them"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL       string `arg:"" help:"Page URL"`
	Style     string `short:"s" enum:"concise,detailed" default:"concise" help:"Summary style (concise, detailed)"`
	MaxTokens int    `name:"max-tokens" default:"0" help:"Reject pages longer than this many tokens (0 disables the check)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"READMODE_ADDR" help:"Listen address"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}
