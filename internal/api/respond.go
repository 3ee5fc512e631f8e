package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jhoffmann/masterblog/internal/config"
	"github.com/jhoffmann/masterblog/internal/model"
)

const (
	msgResourceNotFound    = "Resource not found"
	msgInternalServerError = "Internal Server Error"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	response, err := json.Marshal(data)
	if err != nil {
		s.log.Error().Err(err).Msg("Error marshaling response")
		s.writeError(w, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	w.Header().Set(config.HCType, config.CTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	response, _ := json.Marshal(errorResponse{Status: status, Message: message})

	w.Header().Set(config.HCType, config.CTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// respondError maps store errors onto the wire: validation failures become
// 400s carrying the message, unknown ids become 404s, everything else is a
// logged 500.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		s.writeError(w, http.StatusBadRequest, validationErr.Message)
		return
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		s.writeError(w, http.StatusNotFound, msgResourceNotFound)
		return
	}

	s.log.Error().Err(err).Msg("Unexpected error handling request")
	s.writeError(w, http.StatusInternalServerError, msgInternalServerError)
}
