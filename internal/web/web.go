// Package web serves the browser client for the catalog API.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static/*
var static embed.FS

const (
	ContextFrontend = "frontend"
	ContextAdmin    = "admin"

	ViewList = "list"
	ViewForm = "form"
)

type pageData struct {
	Title   string
	Context string
	View    string
	APIBase string
}

type Handler struct {
	tmpl    *template.Template
	assets  http.FileSystem
	apiBase string
	log     *slog.Logger
}

// New parses the page template once. apiBase is the REST prefix the client calls.
func New(apiBase string, log *slog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, err
	}

	sub, err := fs.Sub(static, "static")
	if err != nil {
		return nil, err
	}

	return &Handler{
		tmpl:    tmpl,
		assets:  http.FS(sub),
		apiBase: apiBase,
		log:     log,
	}, nil
}

func (h *Handler) RegisterRoutes(e *gin.Engine) {
	e.GET("/", h.Frontend)
	e.GET("/admin", h.Admin)
	e.StaticFS("/static", h.assets)
}

func (h *Handler) Frontend(c *gin.Context) {
	h.render(c, ContextFrontend, "Bookshelf")
}

func (h *Handler) Admin(c *gin.Context) {
	h.render(c, ContextAdmin, "Bookshelf admin")
}

func (h *Handler) render(c *gin.Context, context, title string) {
	view := c.DefaultQuery("view", ViewList)
	if view != ViewForm {
		view = ViewList
	}

	data := pageData{
		Title:   title,
		Context: context,
		View:    view,
		APIBase: h.apiBase,
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, data); err != nil {
		h.log.Error("failed to render page", "context", context, "error", err)
	}
}
