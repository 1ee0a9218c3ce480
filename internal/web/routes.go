package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// RegisterRoutes registers gallery routes on the provided mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /search", h.Search)
	mux.HandleFunc("GET /healthz", h.Healthz)
}
