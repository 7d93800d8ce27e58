package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/opeller/authgate/internal/config"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/store"
	"github.com/opeller/authgate/internal/utils"
	"github.com/opeller/authgate/internal/workers"
	"github.com/opeller/authgate/models"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification, and the session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the process-wide secret used to sign and verify
	// session tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued session token
	// remains valid.
	tokenDuration time.Duration

	// pool bounds concurrent bcrypt computations so hashing bursts do
	// not stall unrelated requests.
	pool *workers.Pool

	// validate evaluates the validation tags on request structs.
	validate *validator.Validate

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, pool *workers.Pool, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		pool:           pool,
		validate:       newValidator(),
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// Input is checked against every signup rule at once; violations come
// back as a *ValidationError listing all of them. On valid input the
// password is hashed on the worker pool and the account persisted.
// Duplicate username/email constraint violations from the store are
// translated into the same *ValidationError shape.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.SafeUser, error) {
	log := logger.FromContext(ctx)

	if verr := a.validateSignup(req); verr != nil {
		log.Error().Strs("violations", verr.Messages).Msg("signup validation failed")
		return models.SafeUser{}, verr
	}

	digest, err := a.hashPassword(ctx, req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.SafeUser{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: digest,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.SafeUser{}, NewValidationError("User with that username already exists")
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.SafeUser{}, NewValidationError("User with that email already exists")
		case errors.Is(err, store.ErrUserAlreadyExists):
			return models.SafeUser{}, NewValidationError("User already exists")
		default:
			log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
			return models.SafeUser{}, fmt.Errorf("user creation ended with error: %w", err)
		}
	}

	return createdUser.Safe(), nil
}

// Login authenticates an existing user by username-or-email credential.
//
// Both failure modes, unknown credential and wrong password, collapse
// into ErrInvalidCredentials so responses cannot be used to enumerate
// accounts.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.SafeUser, error) {
	log := logger.FromContext(ctx)

	if verr := a.validateLogin(req); verr != nil {
		log.Error().Strs("violations", verr.Messages).Msg("login validation failed")
		return models.SafeUser{}, verr
	}

	foundUser, err := a.userRepository.FindUserByCredential(ctx, req.Credential)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("credential", req.Credential).Msg("login: unknown credential")
			return models.SafeUser{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by credential failed")
		return models.SafeUser{}, fmt.Errorf("user search by credential failed: %w", err)
	}

	match, err := a.verifyPassword(ctx, req.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Msg("password verification failed")
		return models.SafeUser{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Debug().Int64("id", foundUser.ID).Msg("login: wrong password")
		return models.SafeUser{}, ErrInvalidCredentials
	}

	return foundUser.Safe(), nil
}

// CurrentUser loads the safe view of the account referenced by a
// verified token claim. A missing account propagates
// store.ErrNoUserWasFound so the middleware can drop the stale session.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.SafeUser, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.SafeUser{}, err
	}

	return foundUser.Safe(), nil
}

// IssueToken signs a session token for the given user.
func (a *authService) IssueToken(ctx context.Context, user models.SafeUser) (string, error) {
	token, err := utils.IssueSessionToken(user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw session token string.
//
// It delegates to utils.ParseSessionToken; the typed sentinels
// (malformed / expired / signature mismatch) pass through so callers
// can log the distinction while treating them identically.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.SafeUser, error) {
	return utils.ParseSessionToken(tokenString, a.tokenSignKey)
}

// hashPassword runs the bcrypt derivation on the worker pool and waits
// for the digest.
func (a *authService) hashPassword(ctx context.Context, password string) ([]byte, error) {
	type hashResult struct {
		digest []byte
		err    error
	}

	resultCh := make(chan hashResult, 1)
	err := a.pool.Submit(ctx, func() {
		digest, err := utils.HashPassword(password)
		resultCh <- hashResult{digest: digest, err: err}
	})
	if err != nil {
		return nil, err
	}

	select {
	case res := <-resultCh:
		return res.digest, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// verifyPassword runs the bcrypt comparison on the worker pool.
func (a *authService) verifyPassword(ctx context.Context, password string, digest []byte) (bool, error) {
	resultCh := make(chan bool, 1)
	err := a.pool.Submit(ctx, func() {
		resultCh <- utils.VerifyPassword(password, digest)
	})
	if err != nil {
		return false, err
	}

	select {
	case match := <-resultCh:
		return match, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
