package common

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ResultResponse is the success payload: the formatted pillar text.
type ResultResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the failure payload: a machine error code plus a
// human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondResult sends a 200 response carrying the pillar text
func RespondResult(w http.ResponseWriter, result string) {
	writeJSON(w, http.StatusOK, ResultResponse{Result: result})
}

// RespondError sends an error response with the given status and code
func RespondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeJSON marshals the payload up front so the Content-Length header can
// be set explicitly alongside the utf-8 content type.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "encoding failure", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	w.Write(body)
}
