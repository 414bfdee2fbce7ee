package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"tohuynh.dev/internal/app"
	"tohuynh.dev/internal/nav"
	"tohuynh.dev/internal/views"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	app *app.App
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(a *app.App) *PageHandler {
	return &PageHandler{app: a}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	content, err := views.NewHomeContent(h.app.Store.Get().Site.Profile, h.app.Markup)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageHome, "", "15vh", content)
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	content, err := views.NewProjectsContent(h.app.Projects.GetAll(), h.app.Markup)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageProjects, "Projects", "5vh", content)
}

// NotFound renders the 404 page inside the shell
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, views.PageNotFound, "Page not found", "15vh", nil)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page, title, paddingTop string, content any) {
	path := nav.Normalize(r.URL.Path)
	data := &views.PageData{
		Meta:       h.app.Store.Get().Site.Meta,
		Title:      title,
		Path:       path,
		Nav:        nav.Resolve(nav.Default, path),
		ThemeMode:  h.app.Config.Theme.Mode,
		ThemeCSS:   h.app.ThemeCSS,
		Analytics:  h.app.Analytics.Tags(),
		PaddingTop: paddingTop,
		Content:    content,
	}

	var buf bytes.Buffer
	if err := h.app.Views.Render(&buf, page, data); err != nil {
		h.fail(w, r, err)
		return
	}

	if status == http.StatusOK {
		h.app.Analytics.TrackPageView(r.Context(), path)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.app.Logger.Debug("failed to write page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.app.Logger.Error("failed to render page", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
