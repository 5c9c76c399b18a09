package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "go-form-keeper"
	testKey    = "secret-key"
)

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.EqualValues(t, 123, token.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 2*time.Second)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token.SignedString, claims, func(*jwt.Token) (any, error) {
		return []byte(testKey), nil
	})
	require.NoError(t, err)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.NotNil(t, claims.IssuedAt)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, testKey},
		{"zero duration", testIssuer, 0, testKey},
		{"empty key", testIssuer, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, testKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(valid.SignedString, testKey, testIssuer)

	require.NoError(t, err)
	assert.EqualValues(t, 456, parsed.UserID)
	assert.Equal(t, valid.SignedString, parsed.SignedString)
	assert.Equal(t, valid.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	sign := func(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testKey))
		require.NoError(t, err)
		return s
	}
	issued := func(t *testing.T, issuer string, d time.Duration, key string) string {
		t.Helper()
		token, err := GenerateJWTToken(issuer, 1, d, key)
		require.NoError(t, err)
		return token.SignedString
	}

	tests := []struct {
		name   string
		token  func(t *testing.T) string
		wantIs error
	}{
		{
			name:  "foreign signature",
			token: func(t *testing.T) string { return issued(t, testIssuer, time.Hour, "other-key") },
		},
		{
			name:   "expired",
			token:  func(t *testing.T) string { return issued(t, testIssuer, -time.Second, testKey) },
			wantIs: jwt.ErrTokenExpired,
		},
		{
			name:  "other issuer",
			token: func(t *testing.T) string { return issued(t, "someone-else", time.Hour, testKey) },
		},
		{
			name:  "malformed",
			token: func(t *testing.T) string { return "not.a.token" },
		},
		{
			name: "HS512",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, jwt.RegisteredClaims{Issuer: testIssuer, Subject: "1"})
			},
		},
		{
			name: "no subject",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: testIssuer})
			},
			wantIs: ErrEmptySubject,
		},
		{
			name: "non numeric subject",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: testIssuer, Subject: "alice"})
			},
			wantIs: strconv.ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token(t), testKey, testIssuer)

			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 77, time.Hour, testKey)
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.EqualValues(t, 77, id)

	_, err = ParseUserIDFromJWT("garbage")
	assert.Error(t, err)
}
