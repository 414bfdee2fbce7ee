package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tohuynh.dev/internal/config"
)

func writeContent(t *testing.T, data string) {
	t.Helper()
	site := "meta:\n  title: To Huynh\nprofile:\n  name: To Huynh\n"
	projects := `projects:
  - name: AnnoREP
    description: Annotation tool.
    url: https://anno-rep.org
    technologies: [TypeScript, React]
    source: {name: GitHub, url: "https://github.com/QualitativeDataRepository/AnnoREP-Frontend"}
    docs: {name: Storybook documentation, url: "https://qualitativedatarepository.github.io/AnnoREP-Frontend"}
`
	if err := os.WriteFile(filepath.Join(data, config.SiteFile), []byte(site), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(data, config.ProjectsFile), []byte(projects), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildCmd(t *testing.T) {
	logger = zap.NewNop()

	data := t.TempDir()
	writeContent(t, data)

	cfg = &config.Config{DataPath: data, StaticPath: filepath.Join(data, "no-static")}
	defer func() { cfg = nil }()

	out := filepath.Join(t.TempDir(), "public")
	if err := runBuild(&cobra.Command{}, []string{out}); err != nil {
		t.Fatalf("runBuild failed: %v", err)
	}

	for _, f := range []string{"index.html", "projects/index.html", "404.html", "site.webmanifest"} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("%s was not exported: %v", f, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(out, "projects", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "https://www.googletagmanager.com/gtag/js?id=") {
		t.Error("analytics loader missing from exported page")
	}
	if got := strings.Count(string(page), `<span class="chip">`); got != 2 {
		t.Errorf("expected 2 technology badges, got %d", got)
	}
}

func TestBuildCmdFailsOnMissingContent(t *testing.T) {
	logger = zap.NewNop()
	cfg = &config.Config{DataPath: t.TempDir()}
	defer func() { cfg = nil }()

	if err := runBuild(&cobra.Command{}, []string{t.TempDir()}); err == nil {
		t.Fatal("expected an error for a data directory without content")
	}
}

func TestBuildCmdKeepsDataDirectory(t *testing.T) {
	logger = zap.NewNop()

	root := t.TempDir()
	data := filepath.Join(root, "data")
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatal(err)
	}
	writeContent(t, data)

	cfg = &config.Config{DataPath: data, StaticPath: filepath.Join(root, "static")}
	defer func() { cfg = nil }()

	for _, out := range []string{root, data} {
		if err := runBuild(&cobra.Command{}, []string{out}); err == nil {
			t.Errorf("expected build into %s to be refused", out)
		}
	}
	if _, err := os.Stat(filepath.Join(data, config.ProjectsFile)); err != nil {
		t.Errorf("content was removed: %v", err)
	}
}
