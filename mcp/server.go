// Package mcp exposes readmode as Model Context Protocol tools so that
// assistants can read pages in reading mode.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/goquery"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Name is the implementation name reported to clients.
const Name = "readmode"

// Server is the MCP server of readmode. Dependencies are assigned after
// NewServer and before Run. A nil Summarizer makes summarize_page fail.
type Server struct {
	server *mcp.Server
	logger *slog.Logger

	Fetcher     readmode.Fetcher
	Extractor   readmode.Extractor
	Categorizer readmode.Categorizer
	Converter   readmode.Converter
	Summarizer  readmode.Summarizer
}

// NewServer creates the server and registers its tools.
func NewServer(version string, logger *slog.Logger) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{Name: Name, Version: version}, nil),
		logger: logger,
	}
	s.registerTools()
	return s
}

// Run serves a single client over t until the client disconnects or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	return s.server.Run(ctx, t)
}

// Connect starts a session over t without blocking.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "extract_page",
			Description: "Fetch a web page and return its reading-mode content: title, metadata and sections with paragraphs, images and links.",
		},
		s.extractPage,
	)
	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "page_markdown",
			Description: "Fetch a web page and return its main content converted to Markdown.",
		},
		s.pageMarkdown,
	)
	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "categorize_page",
			Description: "Fetch a web page and classify its site into a broad category.",
		},
		s.categorizePage,
	)
	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "summarize_page",
			Description: "Fetch a web page and summarize its reading-mode text.",
		},
		s.summarizePage,
	)
}

// ExtractPageInput defines input for the extract_page tool.
type ExtractPageInput struct {
	URL    string `json:"url" jsonschema:"Absolute http or https URL of the page"`
	Format string `json:"format,omitempty" jsonschema:"Either text or json. Defaults to text"`
}

func (s *Server) extractPage(ctx context.Context, req *mcp.CallToolRequest, in ExtractPageInput) (*mcp.CallToolResult, any, error) {
	doc, err := s.document(ctx, in.URL)
	if err != nil {
		return s.errorResult("extract_page", err), nil, nil
	}

	switch in.Format {
	case "", "text":
		return textResult(readmode.FormatText(doc)), nil, nil
	case "json":
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return s.errorResult("extract_page", err), nil, nil
		}
		return textResult(string(b)), nil, nil
	default:
		return s.errorResult("extract_page", readmode.Errorf(readmode.EINVALID, "unsupported format %q", in.Format)), nil, nil
	}
}

// PageInput defines input for tools that only need a page URL.
type PageInput struct {
	URL string `json:"url" jsonschema:"Absolute http or https URL of the page"`
}

func (s *Server) pageMarkdown(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	html, err := s.fetch(ctx, in.URL)
	if err != nil {
		return s.errorResult("page_markdown", err), nil, nil
	}

	region, err := goquery.MainContentHTML(html)
	if err != nil {
		return s.errorResult("page_markdown", err), nil, nil
	}

	md, err := s.Converter.Convert(region, in.URL)
	if err != nil {
		return s.errorResult("page_markdown", err), nil, nil
	}
	return textResult(md), nil, nil
}

func (s *Server) categorizePage(ctx context.Context, req *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
	html, err := s.fetch(ctx, in.URL)
	if err != nil {
		return s.errorResult("categorize_page", err), nil, nil
	}

	info, err := s.Categorizer.Categorize(html, in.URL)
	if err != nil {
		return s.errorResult("categorize_page", err), nil, nil
	}

	b, err := json.Marshal(info)
	if err != nil {
		return s.errorResult("categorize_page", err), nil, nil
	}
	return textResult(string(b)), nil, nil
}

// SummarizePageInput defines input for the summarize_page tool.
type SummarizePageInput struct {
	URL   string `json:"url" jsonschema:"Absolute http or https URL of the page"`
	Style string `json:"style,omitempty" jsonschema:"Either concise or detailed. Defaults to concise"`
}

func (s *Server) summarizePage(ctx context.Context, req *mcp.CallToolRequest, in SummarizePageInput) (*mcp.CallToolResult, any, error) {
	if s.Summarizer == nil {
		return s.errorResult("summarize_page", readmode.Errorf(readmode.EUNAVAILABLE, "summaries are not configured; set GEMINI_API_KEY")), nil, nil
	}

	style := readmode.SummaryStyle(in.Style)
	if style == "" {
		style = readmode.SummaryConcise
	}
	if err := style.Validate(); err != nil {
		return s.errorResult("summarize_page", err), nil, nil
	}

	doc, err := s.document(ctx, in.URL)
	if err != nil {
		return s.errorResult("summarize_page", err), nil, nil
	}

	summary, err := s.Summarizer.Summarize(ctx, readmode.FormatText(doc), style)
	if err != nil {
		return s.errorResult("summarize_page", err), nil, nil
	}
	return textResult(summary), nil, nil
}

func (s *Server) document(ctx context.Context, pageURL string) (*readmode.Document, error) {
	html, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return s.Extractor.Extract(html, pageURL)
}

func (s *Server) fetch(ctx context.Context, pageURL string) (string, error) {
	if u, err := url.Parse(strings.TrimSpace(pageURL)); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", readmode.Errorf(readmode.EINVALID, "invalid URL %q", pageURL)
	}
	return s.Fetcher.Fetch(ctx, pageURL)
}

// errorResult reports err to the client as a tool error. Internal errors
// are logged and replaced by a generic message.
func (s *Server) errorResult(tool string, err error) *mcp.CallToolResult {
	if readmode.ErrorCode(err) == readmode.EINTERNAL {
		s.logger.Error("tool failed", "tool", tool, "err", err)
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: readmode.ErrorMessage(err)}},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
