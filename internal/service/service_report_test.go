package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/mock"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportServiceMocks struct {
	forms   *mock.MockFormRepository
	reports *mock.MockReportRepository
	cache   *mock.MockReportCache
}

func newTestReportService(t *testing.T, ctrl *gomock.Controller) (ReportService, reportServiceMocks) {
	t.Helper()

	m := reportServiceMocks{
		forms:   mock.NewMockFormRepository(ctrl),
		reports: mock.NewMockReportRepository(ctrl),
		cache:   mock.NewMockReportCache(ctrl),
	}
	svc := NewReportService(m.forms, mock.NewMockAccessRepository(ctrl), m.reports, m.cache, logger.Nop())

	return svc, m
}

func TestReportService_Query_MissComputesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportService(t, ctrl)
	ctx := context.Background()

	req := models.ReportRequest{GroupBy: []string{"question_3"}, Target: "question_1", Func: models.FuncSum, ChartType: models.ChartBar}
	rows := []models.ReportRow{{"question_3": "go", "SUM_question_1": 61.0}}

	gomock.InOrder(
		m.forms.EXPECT().GetForm(ctx, int64(7)).Return(answerForm(), nil),
		m.cache.EXPECT().Get(ctx, int64(7), req).Return(models.ReportResult{}, store.ReportCacheKey("report:7:v3:k"), false, nil),
		m.reports.EXPECT().Aggregate(ctx, int64(7), req).Return(rows, nil),
		m.cache.EXPECT().Set(ctx, store.ReportCacheKey("report:7:v3:k"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ store.ReportCacheKey, result models.ReportResult) error {
				assert.Equal(t, rows, result.Rows)
				assert.NotEmpty(t, result.ChartURL)
				return nil
			},
		),
	)

	result, err := svc.Query(ctx, 1, 7, req)

	require.NoError(t, err)
	assert.Equal(t, rows, result.Rows)
	assert.Contains(t, result.ChartURL, "quickchart.io")
}

func TestReportService_Query_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportService(t, ctrl)

	req := models.ReportRequest{Target: "user_id", Func: models.FuncCount}
	cached := models.ReportResult{Rows: []models.ReportRow{{"": "", "COUNT_user_id": 4.0}}}

	m.forms.EXPECT().GetForm(gomock.Any(), int64(7)).Return(answerForm(), nil)
	m.cache.EXPECT().Get(gomock.Any(), int64(7), req).Return(cached, store.ReportCacheKey("report:7:v0:k"), true, nil)

	result, err := svc.Query(context.Background(), 1, 7, req)

	require.NoError(t, err)
	assert.Equal(t, cached, result)
}

func TestReportService_Query_CacheFailuresAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportService(t, ctrl)

	req := models.ReportRequest{Target: "user_id", Func: models.FuncCount, ChartType: models.ChartTable}

	m.forms.EXPECT().GetForm(gomock.Any(), int64(7)).Return(answerForm(), nil)
	m.cache.EXPECT().Get(gomock.Any(), int64(7), req).Return(models.ReportResult{}, store.ReportCacheKey(""), false, assert.AnError)
	m.reports.EXPECT().Aggregate(gomock.Any(), int64(7), req).Return(nil, nil)
	m.cache.EXPECT().Set(gomock.Any(), store.ReportCacheKey(""), gomock.Any()).Return(assert.AnError)

	result, err := svc.Query(context.Background(), 1, 7, req)

	require.NoError(t, err)
	assert.NotNil(t, result.Rows)
	assert.Empty(t, result.Rows)
	assert.Empty(t, result.ChartURL)
}

func TestReportService_Query_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		req     models.ReportRequest
		wantErr error
	}{
		{
			name:    "not owner",
			userID:  2,
			req:     models.ReportRequest{Target: "user_id", Func: models.FuncCount},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "foreign question",
			userID:  1,
			req:     models.ReportRequest{GroupBy: []string{"question_42"}, Target: "user_id", Func: models.FuncCount},
			wantErr: store.ErrInvalidReportColumn,
		},
		{
			name:    "raw sql",
			userID:  1,
			req:     models.ReportRequest{Target: "answers->>'x'", Func: models.FuncCount},
			wantErr: store.ErrInvalidReportColumn,
		},
		{
			name:    "sum over text",
			userID:  1,
			req:     models.ReportRequest{Target: "question_4", Func: models.FuncSum},
			wantErr: ErrNonNumericTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestReportService(t, ctrl)

			m.forms.EXPECT().GetForm(gomock.Any(), int64(7)).Return(answerForm(), nil)

			_, err := svc.Query(context.Background(), tt.userID, 7, tt.req)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckReportColumns_AllowsNumericUserID(t *testing.T) {
	req := models.ReportRequest{GroupBy: []string{"question_2"}, Target: "user_id", Func: models.FuncMax}

	require.NoError(t, checkReportColumns(answerForm(), req))
}

func TestReportValidationService_RejectsUnknownFunc(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, _ := newTestReportService(t, ctrl)
	svc := NewReportValidationService().Wrap(inner)

	_, err := svc.Query(context.Background(), 1, 7, models.ReportRequest{Target: "user_id", Func: "MEDIAN"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
