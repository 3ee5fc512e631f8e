package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jhoffmann/masterblog/internal/store"
)

// postBody is the request payload for create and update.
type postBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", store.DefaultPage)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid page: "+r.URL.Query().Get("page"))
		return
	}
	limit, err := queryInt(r, "limit", s.cfg.API.PageSize)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid limit: "+r.URL.Query().Get("limit"))
		return
	}

	posts, err := s.store.List(store.ListOptions{
		Sort:      r.URL.Query().Get("sort"),
		Direction: r.URL.Query().Get("direction"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	post, err := s.store.Create(body.Title, body.Content)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	// A non-integer id never matches a post, so it is a 404 rather than
	// a malformed request.
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, msgResourceNotFound)
		return
	}

	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	post, err := s.store.Update(id, body.Title, body.Content)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, msgResourceNotFound)
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.respondError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	posts := s.store.Search(
		r.URL.Query().Get("title"),
		r.URL.Query().Get("content"),
	)
	s.writeJSON(w, http.StatusOK, posts)
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string, defaultValue int) (int, error) {
	param := r.URL.Query().Get(key)
	if param == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(param)
}
