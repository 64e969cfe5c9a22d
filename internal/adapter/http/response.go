package http

import (
	"encoding/json"
	"net/http"
)

type messageResponse struct {
	Message string `json:"message"`
}

type dataResponse struct {
	Data string `json:"data"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondMessage writes the {"message": ...} body every validation and
// business outcome uses.
func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, messageResponse{Message: message})
}
