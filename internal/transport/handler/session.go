package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/NiceTry3675/news-summarizer/internal/model"
	"github.com/NiceTry3675/news-summarizer/internal/session"
	"github.com/NiceTry3675/news-summarizer/internal/transport/response"
)

type SessionHandler struct {
	store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// Create starts a session
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create()
	response.WriteCreated(w, "Session created", map[string]string{"id": s.ID})
}

// End clears and closes a session
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.store.End(mux.Vars(r)["id"]); err != nil {
		response.WriteNotFound(w, err.Error())
		return
	}
	response.WriteSuccess(w, "Session ended", nil)
}

// ListBookmarks returns the session's bookmarks in insertion order
func (h *SessionHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	response.WriteSuccess(w, "", s.List())
}

// AddBookmark appends a bookmark
func (h *SessionHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var b model.Bookmark
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		response.WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if b.Title == "" || b.URL == "" {
		response.WriteBadRequest(w, "title and url are required")
		return
	}

	count := s.Add(b)
	response.WriteCreated(w, "Bookmark added", map[string]int{"count": count})
}

// RemoveBookmark deletes the bookmark at the given index
func (h *SessionHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.WriteBadRequest(w, "index must be an integer")
		return
	}

	if err := s.Remove(index); err != nil {
		if errors.Is(err, session.ErrIndexOutOfRange) {
			response.WriteNotFound(w, err.Error())
			return
		}
		response.WriteInternalError(w, "Failed to remove bookmark")
		return
	}
	response.WriteSuccess(w, "Bookmark removed", nil)
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.store.Get(mux.Vars(r)["id"])
	if err != nil {
		response.WriteNotFound(w, err.Error())
		return nil, false
	}
	return s, true
}
