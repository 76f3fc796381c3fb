package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed index.html static
var content embed.FS

// Index serves the embedded chat page.
func Index(w http.ResponseWriter, r *http.Request) {
	b, err := content.ReadFile("index.html")
	if err != nil {
		http.Error(w, "index not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}

// StaticHandler serves the embedded assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
