package server

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed webui/*
var uiFS embed.FS

// RegisterWebUI serves embedded assets under <prefix>static/ and the
// redirects to the board. The board page itself belongs to hubui.
func (a *App) RegisterWebUI(prefix string) {
	if prefix == "" {
		prefix = "/ui/"
	}
	// нормализуем
	base := strings.TrimSuffix(prefix, "/")
	slash := base + "/"

	sub, err := fs.Sub(uiFS, "webui")
	if err != nil {
		// webui вшит в бинарь; без него дальше нет смысла
		panic(err)
	}

	// 1) /ui -> /ui/
	a.Router.HandleFunc(base, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, slash, http.StatusFound)
	}).Methods(http.MethodGet)

	// 2) /ui/static/<files>
	static := slash + "static/"
	a.Router.PathPrefix(static).Handler(http.StripPrefix(static, http.FileServer(http.FS(sub)))).
		Methods(http.MethodGet, http.MethodHead)

	// 3) Корень редиректим на UI
	a.Router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, slash, http.StatusFound)
	}).Methods(http.MethodGet)
}
