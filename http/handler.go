package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"dirserve"
	"dirserve/dirtree"
)

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	CORS CORSConfig
}

// Handler serves files and directory listings from a sandboxed root.
type Handler struct {
	config HandlerConfig
	root   *os.Root
}

// NewHandler creates a Handler serving from root. The os.Root sandbox is what
// keeps request paths from escaping the configured directory: names with
// parent-directory segments fail resolution inside the kernel-backed root and
// are answered with 404.
func NewHandler(config *HandlerConfig, root *os.Root) *Handler {
	return &Handler{
		config: *config,
		root:   root,
	}
}

// Router returns the configured http.Handler. A single catch-all route feeds
// every request through the pipeline so that method validation stays in the
// pipeline (unsupported methods get 400, not the router's 405).
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	serve := ErrorBoundary(h.serve)
	r.Handle("/*", serve)
	r.MethodNotAllowed(serve.ServeHTTP)

	return r
}

// serve is the per-request pipeline: validate the method, resolve the path
// under the root, then dispatch to the listing or file branch.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request) error {
	method, ok := dirserve.ParseMethod(r.Method)
	if !ok {
		return dirserve.BadRequest(r.Method)
	}

	name := strings.Trim(r.URL.Path, "/")
	if name == "" {
		name = "."
	}

	info, err := h.root.Stat(name)
	if err != nil {
		return dirserve.NotFound(name)
	}

	if info.IsDir() {
		return h.serveListing(w, method, name)
	}
	return h.serveFile(w, r, method, name, info.Size())
}

func (h *Handler) serveListing(w http.ResponseWriter, method dirserve.Method, dir string) error {
	node, err := dirtree.Build(h.root.FS(), dir)
	if err != nil {
		return err
	}
	body := dirtree.Render(node)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	if method == dirserve.MethodGet {
		if _, err := io.WriteString(w, body); err != nil {
			return fmt.Errorf("send listing for %s: %w", dir, err)
		}
	}
	return nil
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, method dirserve.Method, name string, size int64) error {
	tag := dirserve.ETag(h.root.FS(), name)
	if tag != "" {
		w.Header().Set("ETag", tag)

		if r.Header.Get("If-None-Match") == tag {
			w.WriteHeader(http.StatusNotModified)
			return nil
		}
	}

	w.Header().Set("Content-Type", contentType(name))
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))

	if method == dirserve.MethodHead {
		w.WriteHeader(http.StatusOK)
		return nil
	}

	f, err := h.root.Open(name)
	if err != nil {
		// the entry was stat'ed a moment ago; it can vanish underneath us
		if errors.Is(err, os.ErrNotExist) {
			return dirserve.NotFound(name)
		}
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("send %s: %w", name, err)
	}
	return nil
}

func contentType(name string) string {
	ext := filepath.Ext(name)
	ct := mime.TypeByExtension(ext)

	if ct == "" {
		return "application/octet-stream"
	}

	return ct
}
