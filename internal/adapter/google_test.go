package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleVerifier_Disabled(t *testing.T) {
	v := NewGoogleVerifier(config.OAuth{}, logger.Nop())

	_, err := v.VerifyCode(context.Background(), "code")
	require.ErrorIs(t, err, ErrOAuthDisabled)
}

func TestGoogleVerifier_DiscoveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	v := NewGoogleVerifier(config.OAuth{GoogleClientID: "id"}, logger.Nop()).(*googleVerifier)
	v.issuer = srv.URL

	_, err := v.VerifyCode(context.Background(), "code")
	require.ErrorIs(t, err, ErrBadGateway)
}

func TestGoogleClaims_Identity(t *testing.T) {
	tests := []struct {
		name    string
		claims  googleClaims
		want    ExternalIdentity
		wantErr bool
	}{
		{
			name:   "verified",
			claims: googleClaims{Email: " Ann@Example.com ", EmailVerified: true, Name: "Ann"},
			want:   ExternalIdentity{Email: "ann@example.com", Name: "Ann"},
		},
		{
			name:   "name falls back to local part",
			claims: googleClaims{Email: "bob@example.com", EmailVerified: true},
			want:   ExternalIdentity{Email: "bob@example.com", Name: "bob"},
		},
		{name: "unverified", claims: googleClaims{Email: "x@example.com"}, wantErr: true},
		{name: "no email", claims: googleClaims{EmailVerified: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.claims.identity()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
