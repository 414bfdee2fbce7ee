package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tohuynh.dev/internal/analytics"
	"tohuynh.dev/internal/app"
	"tohuynh.dev/internal/export"
	"tohuynh.dev/internal/handlers"
)

var buildCmd = &cobra.Command{
	Use:   "build <output-dir>",
	Short: "Export the site as static files",
	Long: `Renders every page into <output-dir> (index.html, projects/index.html,
404.html, site.webmanifest) and copies static assets under static/.
The output directory is removed first; it may not be or contain the
working, data or static directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	outputDir := args[0]

	// Page views only count for real visitors, not for the export.
	a, err := app.Bootstrap(cfg, analytics.Discard, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	exp := export.New(handlers.SetupRoutes(a), cfg.StaticPath, logger.Named("export")).Protect(cfg.DataPath)
	if err := exp.Export(outputDir, export.DefaultRoutes); err != nil {
		return err
	}

	logger.Info("build complete", zap.String("output", outputDir))
	return nil
}
