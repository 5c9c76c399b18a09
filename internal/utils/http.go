package utils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. When marshaling fails it answers 500 and
// returns the wrapped error.
//
//	WriteJSON(w, form, http.StatusCreated)
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

// SetAttachment marks the response as a downloadable file named filename.
func SetAttachment(w http.ResponseWriter, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
}
