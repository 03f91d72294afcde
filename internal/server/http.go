package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spf13/viper"

	"medrax-guide/internal/present/format"
	"medrax-guide/pkg/tutorial"
)

// Server serves the guide read-only over HTTP.
type Server struct {
	cfg     *viper.Viper
	catalog tutorial.Catalog
}

func New(cfg *viper.Viper, catalog tutorial.Catalog) *Server {
	return &Server{cfg: cfg, catalog: catalog}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if addr := s.cfg.GetString("http_addr"); addr != "" {
		return addr
	}
	return "127.0.0.1:8585"
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/topics", s.getOnly(s.handleTopics))
	mux.HandleFunc("/topics/", s.getOnly(s.handleTopic))
	mux.HandleFunc("/guide", s.getOnly(s.handleGuide))
	return mux
}

func (s *Server) getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// topicInfo is the index entry: metadata only, no body.
type topicInfo struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Lines  int    `json:"lines"`
	Digest string `json:"digest"`
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	topics := s.catalog.Topics()
	infos := make([]topicInfo, 0, len(topics))
	for _, t := range topics {
		infos = append(infos, topicInfo{
			Slug:   t.Slug,
			Title:  t.Title,
			Lines:  format.BodyLines(t),
			Digest: t.Digest(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(infos)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/topics/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}
	sec, ok := s.catalog.Find(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	etag := `"` + sec.Digest() + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "plain":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_ = format.WritePlainSection(w, sec)
	case "markdown", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_ = format.WriteMarkdownSection(w, sec)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		_ = format.WriteJSONSection(w, sec, false)
	default:
		http.Error(w, "unknown format", http.StatusBadRequest)
	}
}

// handleGuide serves the canonical plain dump, byte-identical to the
// CLI's bare invocation.
func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	etag := `"` + s.catalog.Digest() + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_ = format.WritePlainGuide(w, s.catalog)
}
