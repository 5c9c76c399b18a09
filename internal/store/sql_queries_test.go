// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListFormsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.FormFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "no filter",
			filter: models.FormFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "from forms f")
				require.NotContains(t, q, "where")
				require.NotContains(t, q, "join")
				require.Empty(t, args)
			},
		},
		{
			name:   "owner",
			filter: models.FormFilter{OwnerID: 5},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "f.owner_id = $1")
				require.Equal(t, []any{int64(5)}, args)
			},
		},
		{
			name:   "shared with active templates",
			filter: models.FormFilter{SharedWith: 3, OnlyTemplates: true, OnlyActive: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "join form_allowed_users a on a.form_id = f.form_id")
				require.Contains(t, q, "a.user_id = $1")
				require.Contains(t, q, "f.is_template = $2")
				require.Contains(t, q, "f.is_active")
				require.Contains(t, q, "f.is_expired")
				require.Len(t, args, 4)
				require.Equal(t, int64(3), args[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListFormsQuery(tt.filter)
			require.NoError(t, err)
			require.Contains(t, query, "ORDER BY f.form_id")
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildDeleteStaleQuestionsQuery(t *testing.T) {
	query, args, err := buildDeleteStaleQuestionsQuery(2, []int64{10, 11})
	require.NoError(t, err)
	require.Contains(t, query, "DELETE FROM questions")
	require.Contains(t, query, "question_id NOT IN ($2,$3)")
	require.Equal(t, []any{int64(2), int64(10), int64(11)}, args)

	// nothing kept: every question of the form goes
	query, args, err = buildDeleteStaleQuestionsQuery(2, nil)
	require.NoError(t, err)
	require.Contains(t, query, "(1=1)")
	require.Equal(t, []any{int64(2)}, args)
}

func Test_buildDeleteStalePagesQuery(t *testing.T) {
	query, args, err := buildDeleteStalePagesQuery(4, []int{0, 1})
	require.NoError(t, err)
	require.Contains(t, query, "DELETE FROM form_pages")
	require.Contains(t, query, "page_index NOT IN ($2,$3)")
	require.Len(t, args, 3)
}

func Test_buildSetStatusQuery(t *testing.T) {
	active := true
	expired := false

	tests := []struct {
		name     string
		status   models.FormStatus
		contains []string
		absent   []string
		argsLen  int
	}{
		{name: "both", status: models.FormStatus{IsActive: &active, IsExpired: &expired}, contains: []string{"is_active = $1", "is_expired = $2", "form_id = $3"}, argsLen: 3},
		{name: "only active", status: models.FormStatus{IsActive: &active}, contains: []string{"is_active = $1"}, absent: []string{"is_expired ="}, argsLen: 2},
		{name: "none", status: models.FormStatus{}, contains: []string{"updated_at = now()"}, absent: []string{"is_active =", "is_expired ="}, argsLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSetStatusQuery(9, tt.status)
			require.NoError(t, err)
			require.Contains(t, query, "RETURNING form_id")
			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.absent {
				assert.NotContains(t, query, part)
			}
			assert.Len(t, args, tt.argsLen)
		})
	}
}

func Test_buildGrantAccessQuery(t *testing.T) {
	query, args, err := buildGrantAccessQuery(1, []int64{2, 3})
	require.NoError(t, err)
	require.Contains(t, query, "VALUES ($1,$2),($3,$4)")
	require.Contains(t, query, "ON CONFLICT DO NOTHING")
	require.Equal(t, []any{int64(1), int64(2), int64(1), int64(3)}, args)
}

func Test_buildListSubmissionsQuery(t *testing.T) {
	query, args, err := buildListSubmissionsQuery(1, 0)
	require.NoError(t, err)
	require.NotContains(t, query, "LIMIT")
	require.Len(t, args, 1)

	query, _, err = buildListSubmissionsQuery(1, 20)
	require.NoError(t, err)
	require.Contains(t, query, "LIMIT 20")
}

func Test_buildReportQuery(t *testing.T) {
	tests := []struct {
		name       string
		req        models.ReportRequest
		wantErr    error
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "count grouped by question and user",
			req:  models.ReportRequest{GroupBy: []string{"question_1", "user_id"}, Target: "user_id", Func: models.FuncCount},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "COUNT(*)::float8 AS aggregate")
				require.Contains(t, query, "concat_ws('_', g0, g1) AS group_value")
				require.Contains(t, query, "answers->'question_1' IS NULL THEN 'undefined'")
				require.Contains(t, query, "user_id::text AS g1")
				require.Contains(t, query, "GROUP BY g0, g1")
				require.Contains(t, query, "ORDER BY MIN(answer_id)")
				require.NotContains(t, query, "AS target")
				require.Contains(t, query, "form_id = $1")
				require.Equal(t, []any{int64(7)}, args)
			},
		},
		{
			name: "sum without grouping",
			req:  models.ReportRequest{Target: "question_2", Func: models.FuncSum},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "'' AS group_value")
				require.Contains(t, query, "SUM(target) AS aggregate")
				require.Contains(t, query, "jsonb_typeof(answers->'question_2') = 'number'")
				require.NotContains(t, query, "GROUP BY")
				require.Contains(t, query, "HAVING COUNT(*) > 0")
			},
		},
		{
			name: "column is normalized",
			req:  models.ReportRequest{GroupBy: []string{"question_007"}, Target: "user_id", Func: models.FuncMax},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "answers->'question_7'")
				require.NotContains(t, query, "question_007")
			},
		},
		{
			name:    "injection in group column",
			req:     models.ReportRequest{GroupBy: []string{"question_1'; DROP TABLE users; --"}, Target: "user_id", Func: models.FuncCount},
			wantErr: ErrInvalidReportColumn,
		},
		{
			name:    "unknown target",
			req:     models.ReportRequest{Target: "name", Func: models.FuncAvg},
			wantErr: ErrInvalidReportColumn,
		},
		{
			name:    "unknown function",
			req:     models.ReportRequest{Target: "user_id", Func: "MEDIAN"},
			wantErr: ErrInvalidReportColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildReportQuery(7, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotContains(t, query, "?")
			tt.checkQuery(t, query, args)
		})
	}
}
