// Package export writes the site as static files by rendering every route
// through the same HTTP handler the server uses.
package export

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Route maps a request path to the file it is saved as
type Route struct {
	Path   string
	File   string
	Status int
}

// DefaultRoutes are the pages of the site plus the 404 page and manifest
var DefaultRoutes = []Route{
	{Path: "/", File: "index.html", Status: http.StatusOK},
	{Path: "/projects", File: "projects/index.html", Status: http.StatusOK},
	{Path: "/404", File: "404.html", Status: http.StatusNotFound},
	{Path: "/site.webmanifest", File: "site.webmanifest", Status: http.StatusOK},
}

// Exporter renders routes into an output directory
type Exporter struct {
	handler    http.Handler
	staticPath string
	protected  []string
	logger     *zap.Logger
}

// New creates an Exporter
func New(handler http.Handler, staticPath string, logger *zap.Logger) *Exporter {
	return &Exporter{handler: handler, staticPath: staticPath, logger: logger}
}

// Protect adds source directories that outputDir must never equal or contain
func (e *Exporter) Protect(paths ...string) *Exporter {
	e.protected = append(e.protected, paths...)
	return e
}

// Export cleans outputDir, copies static assets under static/ and writes
// every route. A route answering with an unexpected status fails the build.
func (e *Exporter) Export(outputDir string, routes []Route) error {
	if err := e.checkOutputDir(outputDir); err != nil {
		return err
	}
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to clean output directory %s: %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	if info, err := os.Stat(e.staticPath); err == nil && info.IsDir() {
		if err := os.CopyFS(filepath.Join(outputDir, "static"), os.DirFS(e.staticPath)); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
		e.logger.Info("copied static assets", zap.String("from", e.staticPath))
	} else {
		e.logger.Warn("static directory not found, skipping copy", zap.String("dir", e.staticPath))
	}

	for _, route := range routes {
		if err := e.writeRoute(outputDir, route); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeRoute(outputDir string, route Route) error {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, route.Path, nil)
	e.handler.ServeHTTP(rec, req)

	if rec.Code != route.Status {
		return fmt.Errorf("route %s: expected status %d, got %d", route.Path, route.Status, rec.Code)
	}

	target := filepath.Join(outputDir, filepath.FromSlash(path.Clean("/"+route.File)))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", route.File, err)
	}
	if err := os.WriteFile(target, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", route.File, err)
	}

	e.logger.Info("exported page",
		zap.String("path", route.Path),
		zap.String("file", route.File),
		zap.Int("bytes", rec.Body.Len()),
	)
	return nil
}

// checkOutputDir refuses an output directory whose removal would delete the
// working directory, the static assets or any protected source directory.
func (e *Exporter) checkOutputDir(outputDir string) error {
	out, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory %s: %w", outputDir, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	guarded := append([]string{wd, e.staticPath}, e.protected...)
	for _, p := range guarded {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		if contains(out, abs) {
			return fmt.Errorf("refusing to export into %s: it contains %s", outputDir, p)
		}
	}
	return nil
}

// contains reports whether dir equals parent or lies beneath it
func contains(parent, dir string) bool {
	rel, err := filepath.Rel(parent, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
