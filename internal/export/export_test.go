package export

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("home"))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("projects"))
	})
	mux.HandleFunc("/site.webmanifest", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{}"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("missing"))
	})
	return mux
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestExportWritesRoutesAndStatic(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "css", "site.css"), []byte("body{}"), 0o644))

	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0o644))

	err := New(testHandler(), static, zap.NewNop()).Export(out, DefaultRoutes)
	require.NoError(t, err)

	assert.Equal(t, "home", readFile(t, filepath.Join(out, "index.html")))
	assert.Equal(t, "projects", readFile(t, filepath.Join(out, "projects", "index.html")))
	assert.Equal(t, "missing", readFile(t, filepath.Join(out, "404.html")))
	assert.Equal(t, "{}", readFile(t, filepath.Join(out, "site.webmanifest")))
	assert.Equal(t, "body{}", readFile(t, filepath.Join(out, "static", "css", "site.css")))
	assert.NoFileExists(t, filepath.Join(out, "stale.html"))
}

func TestExportFailsOnUnexpectedStatus(t *testing.T) {
	out := t.TempDir()
	routes := []Route{{Path: "/gone", File: "gone.html", Status: http.StatusOK}}

	err := New(testHandler(), filepath.Join(t.TempDir(), "no-static"), zap.NewNop()).Export(out, routes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/gone")
}

func TestExportRefusesSourceDirectories(t *testing.T) {
	root := t.TempDir()
	static := filepath.Join(root, "static")
	data := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(filepath.Join(static, "css"), 0o755))
	require.NoError(t, os.MkdirAll(data, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "css", "site.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(data, "site.yaml"), []byte("meta: {}"), 0o644))

	exp := New(testHandler(), static, zap.NewNop()).Protect(data)
	for _, out := range []string{root, static, data} {
		err := exp.Export(out, DefaultRoutes)
		require.Error(t, err, out)
		assert.Contains(t, err.Error(), "refusing to export")
	}

	assert.FileExists(t, filepath.Join(data, "site.yaml"))
	assert.FileExists(t, filepath.Join(static, "css", "site.css"))
}

func TestExportRefusesWorkingDirectory(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, "keep.txt"), []byte("x"), 0o644))

	err := New(testHandler(), filepath.Join(t.TempDir(), "static"), zap.NewNop()).Export(".", DefaultRoutes)
	require.Error(t, err)
	assert.FileExists(t, filepath.Join(wd, "keep.txt"))
}

func TestExportIntoSiblingDirectory(t *testing.T) {
	root := t.TempDir()
	static := filepath.Join(root, "static")
	require.NoError(t, os.MkdirAll(static, 0o755))

	out := filepath.Join(root, "static-public")
	require.NoError(t, New(testHandler(), static, zap.NewNop()).Protect(filepath.Join(root, "data")).Export(out, DefaultRoutes))
	assert.FileExists(t, filepath.Join(out, "index.html"))
}
