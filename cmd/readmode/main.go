package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readmode/batch"
	"github.com/fwojciec/readmode/bleve"
	"github.com/fwojciec/readmode/fs"
	"github.com/fwojciec/readmode/gemini"
	"github.com/fwojciec/readmode/goldmark"
	"github.com/fwojciec/readmode/goquery"
	"github.com/fwojciec/readmode/htmltomarkdown"
	readmodehttp "github.com/fwojciec/readmode/http"
	rmmcp "github.com/fwojciec/readmode/mcp"
	rmslog "github.com/fwojciec/readmode/slog"
	"github.com/fwojciec/readmode/sqlite"
	"github.com/fwojciec/readmode/trafilatura"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genai"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding bookmarks. Only opened by the serve command.
	DB *sqlite.DB

	// Search index over bookmarks, stored next to the database.
	Index *bleve.BookmarkIndex
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Index != nil {
		err = m.Index.Close()
	}
	if m.DB != nil {
		if dbErr := m.DB.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readmode"),
		kong.Description("Reading-mode extraction for web articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readmode --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cmd == "serve" || cmd == "mcp", cli.Verbose)

	fetcher := readmodehttp.NewFetcher(readmodehttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()
	deps.Fetcher = rmslog.NewLoggingFetcher(fetcher, deps.Logger)

	extractor := goquery.NewExtractor(
		goquery.WithMetadataExtractor(trafilatura.NewMetadataExtractor()),
	)
	deps.Extractor = rmslog.NewLoggingExtractor(extractor, deps.Logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Renderer = goldmark.NewRenderer()

	if cmd == "extract" {
		deps.Runner = &batch.Runner{
			Fetcher:     deps.Fetcher,
			Extractor:   deps.Extractor,
			RateLimiter: batch.NewDomainLimiter(cli.Extract.RPS),
			Concurrency: cli.Extract.Concurrency,
			OnRetry: func(url string, attempt int, err error) {
				deps.Logger.Warn("retry", "url", url, "attempt", attempt, "err", err)
			},
		}
		if out := cli.Extract.Out; out != "" {
			deps.Store = fs.NewFileStore(filepath.Dir(out), filepath.Base(out))
		}
	}

	// Summaries are optional over MCP.
	if cmd == "summarize" || cmd == "serve" || (cmd == "mcp" && cli.GeminiAPIKey != "") {
		if cli.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		opts := []gemini.Option{gemini.WithModel(cli.Model)}
		if cmd == "summarize" && cli.Summarize.MaxTokens > 0 {
			counter, err := gemini.NewTokenCounter(cli.Model)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			opts = append(opts, gemini.WithTokenLimit(counter, cli.Summarize.MaxTokens))
		}
		deps.Summarizer = rmslog.NewLoggingSummarizer(gemini.NewSummarizer(client, opts...), deps.Logger)
	}

	if cmd == "serve" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set READMODE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Index, err = bleve.Open(m.DBPath+".bleve", sqlite.NewBookmarkService(m.DB))
		if err != nil {
			return err
		}

		s := readmodehttp.NewServer(deps.Logger)
		s.Fetcher = deps.Fetcher
		s.Extractor = deps.Extractor
		s.Categorizer = extractor
		s.Converter = deps.Converter
		s.Summarizer = deps.Summarizer
		s.Renderer = deps.Renderer
		s.BookmarkService = rmslog.NewLoggingBookmarkService(m.Index, deps.Logger)
		s.BookmarkSearcher = m.Index
		deps.Server = s
	}

	if cmd == "mcp" {
		s := rmmcp.NewServer(version, deps.Logger)
		s.Fetcher = deps.Fetcher
		s.Extractor = deps.Extractor
		s.Categorizer = extractor
		s.Converter = deps.Converter
		s.Summarizer = deps.Summarizer
		deps.MCPServer = s
		deps.Transport = &mcp.StdioTransport{}
	}

	return kongCtx.Run(deps)
}

// newLogger writes text logs to w. One-shot commands only report warnings
// unless verbose is set. Logs never go to stdout, which carries MCP
// messages.
func newLogger(w io.Writer, serving, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if serving {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("READMODE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "readmode.db"
	}
	dir := filepath.Join(home, ".readmode")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "readmode.db")
}
