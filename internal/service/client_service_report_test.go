// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/mock"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var reportTestNow = time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

func newTestClientReportService(ctrl *gomock.Controller) (*clientReportService, *mock.MockLocalResultsRepository, *mock.MockServerAdapter) {
	results := mock.NewMockLocalResultsRepository(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	return &clientReportService{
		results: results,
		adapter: serverAdapter,
		logger:  logger.Nop(),
		now:     func() time.Time { return reportTestNow },
	}, results, serverAdapter
}

func rawResults() []models.ResultRow {
	return []models.ResultRow{
		{"id": 1, "user_id": 1, "question_1": "red", "question_2": 3.0},
		{"id": 2, "user_id": 2, "question_1": "blue", "question_2": 5.0},
		{"id": 3, "user_id": 3, "question_1": "red", "question_2": 4.0},
	}
}

var sumByColour = models.ReportRequest{
	GroupBy:   []string{"question_1"},
	Target:    "question_2",
	Func:      models.FuncSum,
	ChartType: models.ChartTable,
}

func TestClientReportService_Query_Server(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, serverAdapter := newTestClientReportService(ctrl)
	ctx := context.Background()

	want := models.ReportResult{Rows: []models.ReportRow{{"question_1": "red", "SUM_question_2": 7.0}}}
	serverAdapter.EXPECT().QueryReport(ctx, int64(1), sumByColour).Return(want, nil)

	got, err := svc.Query(ctx, 1, sumByColour)
	require.NoError(t, err)
	assert.False(t, got.Local)
	assert.Equal(t, want, got.ReportResult)
	assert.Equal(t, reportTestNow, got.FetchedAt)
}

func TestClientReportService_Query_RejectionIsNotRetriedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, serverAdapter := newTestClientReportService(ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().QueryReport(ctx, int64(1), gomock.Any()).
		Return(models.ReportResult{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNonNumericTarget))

	_, err := svc.Query(ctx, 1, sumByColour)
	require.ErrorIs(t, err, ErrNonNumericTarget)
}

func TestClientReportService_Query_FallbackDownloadsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, results, serverAdapter := newTestClientReportService(ctrl)
	ctx := context.Background()

	serverAdapter.EXPECT().QueryReport(ctx, int64(1), gomock.Any()).
		Return(models.ReportResult{}, fmt.Errorf("%w: boom", adapter.ErrInternalServerError))
	serverAdapter.EXPECT().GetResults(ctx, int64(1), models.ResultsQuery{}).Return(rawResults(), nil)
	results.EXPECT().SaveResults(ctx, int64(1), rawResults()).Return(nil)

	got, err := svc.Query(ctx, 1, sumByColour)
	require.NoError(t, err)
	assert.True(t, got.Local)
	assert.Equal(t, reportTestNow, got.FetchedAt)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "red", got.Rows[0]["question_1"])
	assert.InDelta(t, 7.0, got.Rows[0]["SUM_question_2"], 1e-9)
	assert.Equal(t, "blue", got.Rows[1]["question_1"])
}

func TestClientReportService_Query_FallbackUsesLocalCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, results, serverAdapter := newTestClientReportService(ctrl)
	ctx := context.Background()
	fetchedAt := reportTestNow.Add(-time.Hour)
	offline := errors.New("dial tcp: connection refused")

	serverAdapter.EXPECT().QueryReport(ctx, int64(1), gomock.Any()).Return(models.ReportResult{}, offline)
	serverAdapter.EXPECT().GetResults(ctx, int64(1), gomock.Any()).Return(nil, offline)
	results.EXPECT().GetResults(ctx, int64(1)).Return(rawResults(), fetchedAt, nil)

	countReq := models.ReportRequest{GroupBy: []string{"question_1"}, Target: "user_id", Func: models.FuncCount}
	got, err := svc.Query(ctx, 1, countReq)
	require.NoError(t, err)
	assert.True(t, got.Local)
	assert.Equal(t, fetchedAt, got.FetchedAt)
	assert.InDelta(t, 2.0, got.Rows[0]["COUNT_user_id"], 1e-9)
}

func TestClientReportService_Query_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, results, serverAdapter := newTestClientReportService(ctrl)
	ctx := context.Background()
	offline := errors.New("dial tcp: connection refused")

	serverAdapter.EXPECT().QueryReport(ctx, int64(1), gomock.Any()).Return(models.ReportResult{}, offline)
	serverAdapter.EXPECT().GetResults(ctx, int64(1), gomock.Any()).Return(nil, offline)
	results.EXPECT().GetResults(ctx, int64(1)).Return(nil, time.Time{}, store.ErrCachedResultsNotFound)

	_, err := svc.Query(ctx, 1, sumByColour)
	require.ErrorIs(t, err, ErrReportUnavailable)
}

func TestIsServerUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"bad request", fmt.Errorf("%w: x", adapter.ErrBadRequest), false},
		{"not found", fmt.Errorf("%w: x", adapter.ErrNotFound), false},
		{"internal", fmt.Errorf("%w: x", adapter.ErrInternalServerError), true},
		{"bad gateway", fmt.Errorf("%w: x", adapter.ErrBadGateway), true},
		{"transport", errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isServerUnavailable(tt.err))
		})
	}
}
