package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewAIForm(t *testing.T) {
	ai := &mockAIService{
		previewFormFn: func(_ context.Context, req models.AIFormRequest) (models.Form, error) {
			assert.Equal(t, "coffee survey", req.Prompt)
			return models.Form{Title: "Coffee"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AIService: ai})

	rr := serve(router, http.MethodPost, "/api/ai/preview-form", `{"prompt":"coffee survey"}`, true)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.AIFormResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Form)
	assert.Equal(t, "Coffee", resp.Form.Title)
}

func TestPreviewAIForm_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{"disabled", adapter.ErrAIDisabled, http.StatusNotImplemented, app.MsgAIDisabled},
		{"bad payload", fmt.Errorf("%w: no json", adapter.ErrInvalidAIResponse), http.StatusBadGateway, app.MsgAIFailed},
		{"upstream 500", fmt.Errorf("%w: 500", adapter.ErrBadGateway), http.StatusBadGateway, app.MsgAIFailed},
		{"missing prompt", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &mockAIService{
				previewFormFn: func(context.Context, models.AIFormRequest) (models.Form, error) {
					return models.Form{}, tt.serviceErr
				},
			}
			router := newTestRouter(t, &service.Services{AIService: ai})

			rr := serve(router, http.MethodPost, "/api/ai/preview-form", `{"prompt":"x"}`, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, responseBody(rr))
		})
	}
}

func TestGenerateAIForm(t *testing.T) {
	ai := &mockAIService{
		generateFormFn: func(_ context.Context, userID int64, _ models.AIFormRequest) (models.Form, error) {
			return models.Form{ID: 77, OwnerID: userID}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AIService: ai})

	rr := serve(router, http.MethodPost, "/api/ai/generate-form", `{"prompt":"x"}`, true)

	require.Equal(t, http.StatusCreated, rr.Code)
	var form models.Form
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &form))
	assert.Equal(t, testUserID, form.OwnerID)
}
