package server

import (
	"encoding/json"
	"net/http"

	"github.com/gridwright/gridwright/pkg/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  apperr.Code `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, code apperr.Code) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}
