package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const googleIssuer = "https://accounts.google.com"

// googleVerifier exchanges authorization codes obtained from Google's consent
// screen. The OIDC provider is discovered on first use.
type googleVerifier struct {
	cfg    config.OAuth
	issuer string
	logger *logger.Logger

	mu       sync.Mutex
	provider *oidc.Provider
	oauth    oauth2.Config
}

// NewGoogleVerifier returns an [IdentityVerifier] for Google sign-in.
// Without a client id every call fails with [ErrOAuthDisabled].
func NewGoogleVerifier(cfg config.OAuth, logger *logger.Logger) IdentityVerifier {
	if cfg.GoogleClientID == "" {
		return disabledVerifier{}
	}

	return &googleVerifier{cfg: cfg, issuer: googleIssuer, logger: logger}
}

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func (g *googleVerifier) VerifyCode(ctx context.Context, code string) (ExternalIdentity, error) {
	log := logger.FromContext(ctx)

	provider, oauthCfg, err := g.init(ctx)
	if err != nil {
		log.Err(err).Str("func", "*googleVerifier.VerifyCode").Msg("error discovering oidc provider")
		return ExternalIdentity{}, fmt.Errorf("%w: %w", ErrBadGateway, err)
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*googleVerifier.VerifyCode").Msg("token exchange error")
		return ExternalIdentity{}, fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return ExternalIdentity{}, fmt.Errorf("%w: no id_token field in oauth2 token", ErrInvalidIdentity)
	}

	idToken, err := provider.Verifier(&oidc.Config{ClientID: g.cfg.GoogleClientID}).Verify(ctx, rawIDToken)
	if err != nil {
		log.Err(err).Str("func", "*googleVerifier.VerifyCode").Msg("id token verification error")
		return ExternalIdentity{}, fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	var claims googleClaims
	if err = idToken.Claims(&claims); err != nil {
		return ExternalIdentity{}, fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	return claims.identity()
}

func (c googleClaims) identity() (ExternalIdentity, error) {
	email := strings.ToLower(strings.TrimSpace(c.Email))
	if email == "" || !c.EmailVerified {
		return ExternalIdentity{}, fmt.Errorf("%w: e-mail is missing or not verified", ErrInvalidIdentity)
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	return ExternalIdentity{Email: email, Name: name}, nil
}

func (g *googleVerifier) init(ctx context.Context) (*oidc.Provider, oauth2.Config, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.provider != nil {
		return g.provider, g.oauth, nil
	}

	provider, err := oidc.NewProvider(ctx, g.issuer)
	if err != nil {
		return nil, oauth2.Config{}, err
	}

	g.provider = provider
	g.oauth = oauth2.Config{
		ClientID:     g.cfg.GoogleClientID,
		ClientSecret: g.cfg.GoogleClientSecret,
		RedirectURL:  g.cfg.GoogleRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return g.provider, g.oauth, nil
}

type disabledVerifier struct{}

func (disabledVerifier) VerifyCode(context.Context, string) (ExternalIdentity, error) {
	return ExternalIdentity{}, ErrOAuthDisabled
}
