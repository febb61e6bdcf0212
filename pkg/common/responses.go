package common

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for successful mutations
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError sends an error response with the uniform {"error": ...} shape
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondMessage sends a success response with the uniform {"message": ...} shape
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, MessageResponse{Message: message})
}
