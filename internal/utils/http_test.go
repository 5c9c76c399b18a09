package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"created form", map[string]any{"form_id": 7, "title": "Опрос"}, http.StatusCreated, `{"form_id":7,"title":"Опрос"}`},
		{"report rows keep numeric aggregates", []map[string]any{{"g": "a", "SUM_v": 30.0}}, http.StatusOK, `[{"SUM_v":30,"g":"a"}]`},
		{"nil becomes null", nil, http.StatusOK, "null"},
		{"error status", map[string]string{"error": "not found"}, http.StatusNotFound, `{"error":"not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestSetAttachment(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"results-7.xlsx", `attachment; filename=results-7.xlsx`},
		{"results 7.xlsx", `attachment; filename="results 7.xlsx"`},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			w := httptest.NewRecorder()

			SetAttachment(w, tt.filename, "application/octet-stream")

			assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, w.Header().Get("Content-Disposition"))
		})
	}
}
