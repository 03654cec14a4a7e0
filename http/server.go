package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBody caps JSON request bodies.
const maxRequestBody = 1 << 20

// Server is the HTTP API of readmode. Dependencies are assigned after
// NewServer and before the first request is served.
type Server struct {
	router chi.Router
	logger *slog.Logger

	Fetcher     readmode.Fetcher
	Extractor   readmode.Extractor
	Categorizer readmode.Categorizer
	Converter   readmode.Converter
	Summarizer  readmode.Summarizer
	Renderer    readmode.Renderer

	BookmarkService  readmode.BookmarkService
	BookmarkSearcher readmode.BookmarkSearcher
}

// NewServer creates the server and registers its routes.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{logger: logger}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)

	r.Get("/content", s.handleContent)
	r.Get("/markdown", s.handleMarkdown)
	r.Get("/reader", s.handleReader)
	r.Get("/category", s.handleCategory)
	r.Post("/summarize", s.handleSummarize)

	r.Post("/bookmark", s.handleCreateBookmark)
	r.Get("/bookmarks/{userID}", s.handleListBookmarks)
	r.Get("/bookmarks/{userID}/search", s.handleSearchBookmarks)
	r.Delete("/bookmark/{userID}/{bookmarkID}", s.handleDeleteBookmark)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleContent fetches the page named by the url query parameter and
// returns its reading-mode Document.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	pageURL, err := pageURLParam(r)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	doc, err := s.Extractor.Extract(html, pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleMarkdown returns the page's main content region as Markdown.
func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	pageURL, err := pageURLParam(r)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	region, err := goquery.MainContentHTML(html)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	md, err := s.Converter.Convert(region, pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(md))
}

// handleReader returns the page rendered as a standalone reading-mode
// HTML page.
func (s *Server) handleReader(w http.ResponseWriter, r *http.Request) {
	pageURL, err := pageURLParam(r)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	doc, err := s.Extractor.Extract(html, pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	page, err := s.Renderer.Render(doc)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	pageURL, err := pageURLParam(r)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	info, err := s.Categorizer.Categorize(html, pageURL)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

type summarizeRequest struct {
	Text        string `json:"text"`
	URL         string `json:"url"`
	SummaryType string `json:"summary_type"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// handleSummarize summarizes the given text, or the reading-mode text of
// the given URL when no text is sent.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	style := readmode.SummaryStyle(req.SummaryType)
	if style == "" {
		style = readmode.SummaryConcise
	}
	if err := style.Validate(); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && req.URL != "" {
		if err := validatePageURL(req.URL); err != nil {
			Error(w, r, s.logger, err)
			return
		}
		html, err := s.Fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			Error(w, r, s.logger, err)
			return
		}
		doc, err := s.Extractor.Extract(html, req.URL)
		if err != nil {
			Error(w, r, s.logger, err)
			return
		}
		text = readmode.FormatText(doc)
	}
	if text == "" {
		Error(w, r, s.logger, readmode.Errorf(readmode.EINVALID, "No text provided"))
		return
	}

	summary, err := s.Summarizer.Summarize(r.Context(), text, style)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, &summarizeResponse{Summary: summary})
}

// bookmarkRequest mirrors the search result the client saves.
type bookmarkRequest struct {
	UserID string `json:"user_id"`
	Result *struct {
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
		Favicon  string `json:"favicon"`
		Category string `json:"category"`
		Site     string `json:"site"`
	} `json:"result"`
}

func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req bookmarkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if req.UserID == "" || req.Result == nil {
		Error(w, r, s.logger, readmode.Errorf(readmode.EINVALID, "Missing user_id or result data."))
		return
	}

	b := &readmode.Bookmark{
		UserID:   req.UserID,
		Title:    req.Result.Title,
		Link:     req.Result.Link,
		Snippet:  req.Result.Snippet,
		Favicon:  req.Result.Favicon,
		Category: req.Result.Category,
		Site:     req.Result.Site,
	}
	if err := s.BookmarkService.CreateBookmark(r.Context(), b); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

type bookmarksResponse struct {
	UserID    string               `json:"user_id"`
	Bookmarks []*readmode.Bookmark `json:"bookmarks"`
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	bookmarks, err := s.BookmarkService.FindBookmarks(r.Context(), userID)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []*readmode.Bookmark{}
	}

	writeJSON(w, http.StatusOK, &bookmarksResponse{UserID: userID, Bookmarks: bookmarks})
}

type searchBookmarksResponse struct {
	UserID    string               `json:"user_id"`
	Query     string               `json:"query"`
	Bookmarks []*readmode.Bookmark `json:"bookmarks"`
}

func (s *Server) handleSearchBookmarks(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	query := r.URL.Query().Get("q")

	bookmarks, err := s.BookmarkSearcher.SearchBookmarks(r.Context(), userID, query)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []*readmode.Bookmark{}
	}

	writeJSON(w, http.StatusOK, &searchBookmarksResponse{UserID: userID, Query: query, Bookmarks: bookmarks})
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	bookmarkID := chi.URLParam(r, "bookmarkID")

	if err := s.BookmarkService.DeleteBookmark(r.Context(), userID, bookmarkID); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": bookmarkID})
}

// pageURLParam returns the url query parameter if it is an absolute
// http(s) URL.
func pageURLParam(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("url"))
	if err := validatePageURL(raw); err != nil {
		return "", err
	}
	return raw, nil
}

func validatePageURL(raw string) error {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return readmode.Errorf(readmode.EINVALID, "Invalid URL format")
	}
	if u, err := url.Parse(raw); err != nil || u.Host == "" {
		return readmode.Errorf(readmode.EINVALID, "Invalid URL format")
	}
	return nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(v); err != nil {
		return readmode.Errorf(readmode.EINVALID, "Invalid JSON body")
	}
	return nil
}
