package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/mock"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientFormService_Get_DisplayOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFormService(serverAdapter)
	ctx := context.Background()

	serverAdapter.EXPECT().GetForm(ctx, int64(5)).Return(models.Form{
		ID: 5,
		Pages: []models.Page{{Questions: []models.Question{
			{ID: 2, Text: "second", CreatedAt: 200},
			{ID: 1, Text: "first", CreatedAt: 100},
		}}},
	}, nil)

	form, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	require.Len(t, form.Pages[0].Questions, 2)
	assert.Equal(t, "first", form.Pages[0].Questions[0].Text)
	assert.Equal(t, "second", form.Pages[0].Questions[1].Text)
}

func TestClientFormService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFormService(serverAdapter)
	ctx := context.Background()

	serverAdapter.EXPECT().GetForm(ctx, int64(9)).
		Return(models.Form{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgFormNotFound))

	_, err := svc.Get(ctx, 9)
	require.ErrorIs(t, err, store.ErrFormNotFound)
}

func TestClientFormService_Submit_MapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		respErr error
		wantErr error
	}{
		{"expired", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgFormExpired), ErrFormExpired},
		{"missing answer", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgMissingAnswer), ErrMissingAnswer},
		{"forbidden", fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgAccessDenied), ErrAccessDenied},
		{"ok", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverAdapter := mock.NewMockServerAdapter(ctrl)
			svc := NewClientFormService(serverAdapter)
			ctx := context.Background()
			answers := models.Answers{"question_1": "x"}

			serverAdapter.EXPECT().SubmitAnswers(ctx, int64(1), answers).Return(tt.respErr)

			err := svc.Submit(ctx, 1, answers)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientFormService_Share_RequiresUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientFormService(mock.NewMockServerAdapter(ctrl))

	err := svc.Share(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientFormService_ListAndUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientFormService(serverAdapter)
	ctx := context.Background()

	serverAdapter.EXPECT().ListForms(ctx, adapter.ScopeShared).Return([]models.Form{{ID: 1}, {ID: 2}}, nil)
	serverAdapter.EXPECT().ListUsers(ctx).Return([]models.UserSummary{{ID: 4, Username: "dave"}}, nil)

	forms, err := svc.List(ctx, adapter.ScopeShared)
	require.NoError(t, err)
	assert.Len(t, forms, 2)

	users, err := svc.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dave", users[0].Username)
}
