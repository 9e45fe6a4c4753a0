package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-internal-auth/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
//	WriteJSON(w, models.ServiceHealth{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteResult writes a [models.Result] envelope whose code equals statusCode.
//
//	WriteResult(w, http.StatusUnauthorized, "internal auth token mismatch")
//	// {"code":401,"message":"internal auth token mismatch"}
func WriteResult(w http.ResponseWriter, statusCode int, message string) (int, error) {
	return WriteJSON(w, models.NewResult(statusCode, message), statusCode)
}
