package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"tohuynh.dev/internal/models"
	"tohuynh.dev/internal/services"
)

// ManifestHandler serves the web app manifest built from site metadata
type ManifestHandler struct {
	store  *services.ContentStore
	logger *zap.Logger
}

// webManifest is the subset of the Web App Manifest the site fills in
type webManifest struct {
	Name            string        `json:"name"`
	ShortName       string        `json:"short_name"`
	Description     string        `json:"description,omitempty"`
	StartURL        string        `json:"start_url"`
	Display         string        `json:"display"`
	ThemeColor      string        `json:"theme_color,omitempty"`
	BackgroundColor string        `json:"background_color,omitempty"`
	Icons           []models.Icon `json:"icons,omitempty"`
}

// NewManifestHandler creates a new ManifestHandler
func NewManifestHandler(store *services.ContentStore, logger *zap.Logger) *ManifestHandler {
	return &ManifestHandler{store: store, logger: logger}
}

// BuildManifest derives the manifest from site metadata
func BuildManifest(meta models.SiteMeta) any {
	short := meta.ShortName
	if short == "" {
		short = meta.Title
	}
	var icons []models.Icon
	for _, ic := range meta.Icons {
		if ic.Sizes != "" {
			icons = append(icons, ic)
		}
	}
	return webManifest{
		Name:            meta.Title,
		ShortName:       short,
		Description:     meta.Description,
		StartURL:        "/",
		Display:         "standalone",
		ThemeColor:      meta.ThemeColor,
		BackgroundColor: meta.ThemeColor,
		Icons:           icons,
	}
}

// Manifest handles GET /site.webmanifest
func (h *ManifestHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/manifest+json")
	respondJSON(w, h.logger, http.StatusOK, BuildManifest(h.store.Get().Site.Meta))
}
