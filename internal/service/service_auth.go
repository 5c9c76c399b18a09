package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles local sign-up with bcrypt password hashes, Google sign-in and
// the JWT token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// identityVerifier turns Google authorization codes into verified
	// identities.
	identityVerifier adapter.IdentityVerifier

	// passwordCost is the bcrypt cost used for new password hashes.
	passwordCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, identityVerifier adapter.IdentityVerifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		identityVerifier: identityVerifier,
		passwordCost:     cfg.PasswordCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// SignUp creates a new LOCAL account. The role defaults to USER.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameAlreadyExists).
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid sign-up data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password, a.passwordCost)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	name := req.Name
	if name == "" {
		name = req.Username
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Provider:     models.ProviderLocal,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing LOCAL account.
//
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("username", req.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.PasswordHash == "" {
		log.Warn().Int64("id", foundUser.UserID).Str("provider", string(foundUser.Provider)).Msg("password login to external account")
		return models.User{}, ErrWrongPassword
	}
	if err = utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

func (a *authService) LoginWithGoogle(ctx context.Context, req models.GoogleLoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Code == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	identity, err := a.identityVerifier.VerifyCode(ctx, req.Code)
	if err != nil {
		log.Err(err).Msg("google identity verification failed")
		return models.User{}, fmt.Errorf("google identity verification failed: %w", err)
	}

	user, err := a.userRepository.UpsertExternalUser(ctx, models.User{
		Username: identity.Email,
		Name:     identity.Name,
		Role:     models.RoleUser,
		Provider: models.ProviderGoogle,
	})
	if err != nil {
		log.Err(err).Str("username", identity.Email).Msg("external user upsert failed")
		return models.User{}, fmt.Errorf("external user upsert failed: %w", err)
	}

	return user, nil
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

func (a *authService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}

	return summaries, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
