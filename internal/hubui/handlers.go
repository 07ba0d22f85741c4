package hubui

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"hubboard/internal/logs"
	"hubboard/internal/models"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const DefaultCookie = "hubboard_session"

type HTTP struct {
	sessions *Sessions
	render   *Renderer
	cookie   string
}

func NewHTTP(s *Sessions, r *Renderer, cookie string) *HTTP {
	if cookie == "" {
		cookie = DefaultCookie
	}
	return &HTTP{sessions: s, render: r, cookie: cookie}
}

func (h *HTTP) RegisterRoutes(r *mux.Router) {
	ui := r.PathPrefix("/ui").Subrouter()

	ui.HandleFunc("/", h.page).Methods(http.MethodGet, http.MethodHead)
	ui.HandleFunc("/hubs", h.addHub).Methods(http.MethodPost)
	ui.HandleFunc("/hubs/{serial}/edit", h.editHub).Methods(http.MethodPost)
	ui.HandleFunc("/edit/status", h.selectStatus).Methods(http.MethodPost)
	ui.HandleFunc("/edit/save", h.save).Methods(http.MethodPost)
	ui.HandleFunc("/edit/cancel", h.cancel).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/hubs", h.listHubs).Methods(http.MethodGet)
}

// board finds the caller's session or starts a new one.
func (h *HTTP) board(w http.ResponseWriter, r *http.Request) *Board {
	if c, err := r.Cookie(h.cookie); err == nil {
		if b, ok := h.sessions.Get(c.Value); ok {
			return b
		}
	}
	id, b := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	logs.Logger.WithField("session", id).Debug("session started")
	return b
}

func (h *HTTP) page(w http.ResponseWriter, r *http.Request) {
	hubs, mode := h.board(w, r).Snapshot()

	// рендерим в буфер, чтобы не отдать половину страницы при ошибке
	var buf bytes.Buffer
	if err := h.render.Render(&buf, hubs, mode); err != nil {
		logs.Logger.Errorf("render board: %v", err)
		models.WriteProblem(w, http.StatusInternalServerError, "Render failed", err.Error(), nil)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *HTTP) addHub(w http.ResponseWriter, r *http.Request) {
	hub := h.board(w, r).Add()
	logs.Logger.WithField("serial", hub.SerialNo).Info("hub added")
	backToBoard(w, r)
}

func (h *HTTP) editHub(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]
	if err := h.board(w, r).Edit(serial); err != nil {
		writeBoardError(w, err, map[string]string{"serial": serial})
		return
	}
	backToBoard(w, r)
}

func (h *HTTP) selectStatus(w http.ResponseWriter, r *http.Request) {
	st, ok := formStatus(w, r)
	if !ok {
		return
	}
	if err := h.board(w, r).Select(st); err != nil {
		writeBoardError(w, err, nil)
		return
	}
	backToBoard(w, r)
}

// save accepts an optional status field so the form works without script.
func (h *HTTP) save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad form", "cannot parse form", nil)
		return
	}
	b := h.board(w, r)

	var (
		hub models.Hub
		err error
	)
	if raw := r.PostForm.Get("status"); raw != "" {
		st, perr := models.ParseStatus(raw)
		if perr != nil {
			writeBoardError(w, perr, map[string]string{"status": raw})
			return
		}
		hub, err = b.SaveAs(st)
	} else {
		hub, err = b.Save()
	}
	if err != nil {
		writeBoardError(w, err, nil)
		return
	}
	logs.Logger.WithFields(logrus.Fields{
		"serial": hub.SerialNo,
		"status": hub.Status,
	}).Info("hub saved")
	backToBoard(w, r)
}

func (h *HTTP) cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.board(w, r).Cancel(); err != nil {
		writeBoardError(w, err, nil)
		return
	}
	backToBoard(w, r)
}

type modeOut struct {
	Name      string      `json:"name"`
	Original  *models.Hub `json:"original,omitempty"`
	Candidate *models.Hub `json:"candidate,omitempty"`
}

func (h *HTTP) listHubs(w http.ResponseWriter, r *http.Request) {
	hubs, mode := h.board(w, r).Snapshot()

	out := struct {
		Mode modeOut      `json:"mode"`
		Hubs []models.Hub `json:"hubs"`
	}{Mode: modeOut{Name: "browsing"}, Hubs: hubs}
	if ed, ok := mode.(Editing); ok {
		out.Mode = modeOut{Name: "editing", Original: &ed.Original, Candidate: &ed.Candidate}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(out)
}

func formStatus(w http.ResponseWriter, r *http.Request) (models.Status, bool) {
	if err := r.ParseForm(); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad form", "cannot parse form", nil)
		return "", false
	}
	raw := r.PostForm.Get("status")
	st, err := models.ParseStatus(raw)
	if err != nil {
		writeBoardError(w, err, map[string]string{"status": raw})
		return "", false
	}
	return st, true
}

func backToBoard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/ui/", http.StatusSeeOther)
}

func writeBoardError(w http.ResponseWriter, err error, extra map[string]string) {
	switch {
	case errors.Is(err, models.ErrUnknownStatus):
		models.WriteProblem(w, http.StatusBadRequest, "Bad status", err.Error(), extra)
	case errors.Is(err, ErrHubNotFound):
		models.WriteProblem(w, http.StatusNotFound, "Not found", err.Error(), extra)
	case errors.Is(err, ErrNotEditing), errors.Is(err, ErrAlreadyEditing):
		models.WriteProblem(w, http.StatusConflict, "Conflict", err.Error(), extra)
	default:
		models.WriteProblem(w, http.StatusInternalServerError, "Internal error", err.Error(), extra)
	}
}
