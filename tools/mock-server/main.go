// Package main implements a mock SatSearch API server for local development.
// It serves canned catalog data from JSON fixtures so the satsearch CLI and
// the catalog mirror can run without real SatSearch credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

// catalog holds the fixture data. Items stay raw so responses echo the
// fixture files exactly.
type catalog struct {
	Suppliers  []json.RawMessage
	Categories []json.RawMessage
	Attributes []json.RawMessage
	Products   []json.RawMessage
}

// fixtureKeys are the fields the mock filters and looks up by.
type fixtureKeys struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	Category *struct {
		UUID string `json:"uuid"`
	} `json:"category"`
}

type page struct {
	Total    int               `json:"total"`
	PerPage  int               `json:"perPage"`
	Page     int               `json:"page"`
	LastPage int               `json:"lastPage"`
	Data     []json.RawMessage `json:"data"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureDir := flag.String("fixtures", "tools/mock-server/testdata", "directory holding the catalog fixtures")
	perPage := flag.Int("per-page", 2, "page size for paginated endpoints")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadCatalog(*fixtureDir)
	if err != nil {
		logger.Error("failed to load fixtures", "dir", *fixtureDir, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixtures",
		"suppliers", len(cat.Suppliers),
		"categories", len(cat.Categories),
		"attributes", len(cat.Attributes),
		"products", len(cat.Products),
	)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock SatSearch server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, cat, *perPage)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, cat *catalog, perPage int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/suppliers", suppliersHandler(logger, cat.Suppliers, perPage))
	mux.HandleFunc("GET /v1/suppliers/{uuid}", byUUIDHandler(cat.Suppliers))
	mux.HandleFunc("GET /v1/products/categories", listHandler(cat.Categories))
	mux.HandleFunc("GET /v1/products/attributes", listHandler(cat.Attributes))
	mux.HandleFunc("GET /v1/products", productsHandler(logger, cat.Products, perPage))
	mux.HandleFunc("GET /v1/products/{uuid}", byUUIDHandler(cat.Products))
	return requireAuth(logger, mux)
}

func loadCatalog(dir string) (*catalog, error) {
	cat := &catalog{}
	files := []struct {
		name string
		dst  *[]json.RawMessage
	}{
		{"suppliers.json", &cat.Suppliers},
		{"categories.json", &cat.Categories},
		{"attributes.json", &cat.Attributes},
		{"products.json", &cat.Products},
	}
	for _, f := range files {
		items, err := loadFixture(filepath.Join(dir, f.name))
		if err != nil {
			return nil, err
		}
		*f.dst = items
	}
	return cat, nil
}

func loadFixture(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// requireAuth rejects requests without a bearer token and an application
// id. The values themselves are not checked.
func requireAuth(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" || r.Header.Get("X-APP-ID") == "" {
			logger.Warn("request missing credentials", "path", r.URL.Path)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthenticated."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func listHandler(items []json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, items)
	}
}

func byUUIDHandler(items []json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("uuid")
		for _, raw := range items {
			if keysOf(raw).UUID == id {
				writeJSON(w, http.StatusOK, raw)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found."})
	}
}

func suppliersHandler(logger *slog.Logger, items []json.RawMessage, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := paginate(items, queryInt(r, "page", 1), perPage)
		writeJSON(w, http.StatusOK, p)
		logger.Info("suppliers", "page", p.Page, "last_page", p.LastPage, "returned", len(p.Data))
	}
}

// productsHandler filters by product_name (case-insensitive substring) and
// category_uuids. Supplier filters are accepted but not applied: products
// only carry the supplier name.
func productsHandler(logger *slog.Logger, items []json.RawMessage, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		name := strings.ToLower(strings.TrimSpace(q.Get("product_name")))
		categories := q["category_uuids"]

		var matched []json.RawMessage
		for _, raw := range items {
			k := keysOf(raw)
			if name != "" && !strings.Contains(strings.ToLower(k.Name), name) {
				continue
			}
			if len(categories) > 0 && (k.Category == nil || !slices.Contains(categories, k.Category.UUID)) {
				continue
			}
			matched = append(matched, raw)
		}

		p := paginate(matched, queryInt(r, "page", 1), queryInt(r, "page_size", perPage))
		writeJSON(w, http.StatusOK, p)
		logger.Info("products", "name", name, "matched", p.Total, "page", p.Page, "returned", len(p.Data))
	}
}

func paginate(items []json.RawMessage, pageNum, perPage int) page {
	if perPage < 1 {
		perPage = 1
	}
	lastPage := max((len(items)+perPage-1)/perPage, 1)
	pageNum = min(max(pageNum, 1), lastPage)

	start := min((pageNum-1)*perPage, len(items))
	end := min(start+perPage, len(items))

	data := items[start:end]
	if data == nil {
		data = []json.RawMessage{}
	}
	return page{
		Total:    len(items),
		PerPage:  perPage,
		Page:     pageNum,
		LastPage: lastPage,
		Data:     data,
	}
}

func queryInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return def
}

func keysOf(raw json.RawMessage) fixtureKeys {
	var k fixtureKeys
	//nolint:errcheck,gosec // fixture data is trusted; key extraction is best-effort
	json.Unmarshal(raw, &k)
	return k
}
