package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_SignUp(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SignUpRequest{Username: "alice", Password: "secret1"}))
	assert.NoError(t, v.Validate(ctx, &models.SignUpRequest{Username: "alice", Password: "secret1", Role: models.RoleAdmin}))

	err := v.Validate(ctx, models.SignUpRequest{Username: "al", Password: "x", Role: "ROOT"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Username(min)")
	assert.Contains(t, err.Error(), "Password(min)")
	assert.Contains(t, err.Error(), "Role(oneof)")
}

func TestStructValidator_ReportRequest(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	valid := models.ReportRequest{GroupBy: []string{"question_1"}, Target: "question_2", Func: models.FuncSum, ChartType: models.ChartBar}
	assert.NoError(t, v.Validate(ctx, valid))

	emptyGroup := valid
	emptyGroup.GroupBy = nil
	assert.NoError(t, v.Validate(ctx, emptyGroup), "empty groupBy is a single implicit group")

	tests := []struct {
		name   string
		mutate func(r *models.ReportRequest)
	}{
		{"blank group field", func(r *models.ReportRequest) { r.GroupBy = []string{""} }},
		{"no target", func(r *models.ReportRequest) { r.Target = "" }},
		{"unknown func", func(r *models.ReportRequest) { r.Func = "MEDIAN" }},
		{"unknown chart", func(r *models.ReportRequest) { r.ChartType = "radar" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, v.Validate(ctx, r), ErrInvalidInput)
		})
	}
}

func TestStructValidator_PartialFields(t *testing.T) {
	v := NewStructValidator()

	req := models.SignUpRequest{Username: "alice"}
	assert.NoError(t, v.Validate(context.Background(), req, "Username"))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "Password"), ErrInvalidInput)
}

func TestStructValidator_ShareRequest(t *testing.T) {
	v := NewStructValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ShareRequest{UserIDs: []int64{2, 3}}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.ShareRequest{}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(context.Background(), models.ShareRequest{UserIDs: []int64{0}}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(context.Background(), models.UserRef{}), ErrInvalidInput)
}

func TestStructValidator_NonStruct(t *testing.T) {
	err := NewStructValidator().Validate(context.Background(), "plain string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
