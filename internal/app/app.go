// Package app assembles the process-wide pieces every page needs: loaded
// content, parsed templates, the theme and the analytics bootstrap.
package app

import (
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"tohuynh.dev/internal/analytics"
	"tohuynh.dev/internal/config"
	"tohuynh.dev/internal/markup"
	"tohuynh.dev/internal/services"
	"tohuynh.dev/internal/views"
)

// App holds everything shared across requests
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     *services.ContentStore
	Projects  *services.ProjectService
	Views     *views.Renderer
	Markup    *markup.Renderer
	Analytics *analytics.Bootstrap
	ThemeCSS  template.CSS

	dispatcher *analytics.Dispatcher
}

// Bootstrap loads content and templates once for the whole process. Page
// views are delivered to sink in the background; a nil sink discards them.
func Bootstrap(cfg *config.Config, sink analytics.Sink, logger *zap.Logger) (*App, error) {
	content, err := config.LoadContent(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare templates: %w", err)
	}

	if sink == nil {
		sink = analytics.Discard
	}
	dispatcher := analytics.NewDispatcher(sink, logger, 0)

	store := services.NewContentStore(content)
	a := &App{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Projects:   services.NewProjectService(store),
		Views:      renderer,
		Markup:     markup.NewRenderer(),
		Analytics:  analytics.NewBootstrap(cfg.AnalyticsID, dispatcher, logger),
		ThemeCSS:   views.ThemeCSS(cfg.Theme),
		dispatcher: dispatcher,
	}

	if cfg.AnalyticsID == "" {
		logger.Warn("analytics tracking id not set, gtag loader will have an empty id")
	}
	logger.Info("content loaded",
		zap.String("data", cfg.DataPath),
		zap.Int("projects", len(content.Projects.Projects)),
	)
	return a, nil
}

// Reload re-reads the data directory and swaps the content snapshot.
// The previous snapshot stays in place when loading fails.
func (a *App) Reload() error {
	content, err := config.LoadContent(a.Config.DataPath)
	if err != nil {
		return err
	}
	a.Store.Replace(content)
	a.Logger.Info("content reloaded", zap.Int("projects", len(content.Projects.Projects)))
	return nil
}

// Close flushes pending analytics events
func (a *App) Close() {
	a.dispatcher.Close()
}
