package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/store"
	"github.com/MKhiriev/go-saas-starter/internal/utils"
	"github.com/MKhiriev/go-saas-starter/models"
)

// minPasswordLength is enforced before any credential material is derived.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles account signup, credential verification, and API-key resolution
// using a UserRepository for persistence and salted SHA-256 digests for
// password storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// It validates the request fields, pre-checks that the email is free, hashes
// the password with a fresh random salt, issues a random API key (generated
// independently of the salt), and persists the account on the free plan with
// a zero usage counter.
//
// The existence pre-check and the insert are two separate statements; the
// users table additionally carries a unique constraint on email, so the loser
// of a concurrent signup race receives the same error as a sequential
// duplicate would.
//
// Returns the persisted user (with server-assigned UserID and timestamps) or:
//   - ErrInvalidDataProvided if name, email, or password is empty.
//   - ErrInvalidEmail if the email does not parse as an address.
//   - ErrPasswordTooShort if the password has fewer than 6 characters.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) SignUp(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		log.Error().Str("email", req.Email).Msg("malformed email address")
		return models.User{}, ErrInvalidEmail
	}

	if len(req.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, req.Email); err == nil {
		log.Info().Str("email", req.Email).Msg("signup attempt for an existing email")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user lookup by email failed")
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	apiKey, err := utils.GenerateAPIKey()
	if err != nil {
		return models.User{}, fmt.Errorf("API key generation failed: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: utils.HashPassword(req.Password, salt),
		PasswordSalt: salt,
		APIKey:       apiKey,
		Plan:         models.PlanFree,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by exact email and verifies the password digest
// with the stored salt. An unknown email and a wrong password both fail with
// ErrInvalidCredentials so that the response never reveals which part was
// wrong.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordSalt, foundUser.PasswordHash) {
		log.Info().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// ResolveAPIKey resolves an API key to its account. This is the sole
// authorization primitive used by protected operations; the middleware calls
// it once per request.
//
// Returns ErrInvalidAPIKey for an empty key and for a key matching no
// account — a single error kind, by the same non-enumeration rule as Login.
func (a *authService) ResolveAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	if apiKey == "" {
		return models.User{}, ErrInvalidAPIKey
	}

	foundUser, err := a.userRepository.FindUserByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Msg("unknown API key presented")
			return models.User{}, ErrInvalidAPIKey
		}

		log.Err(err).Msg("user search by API key failed")
		return models.User{}, fmt.Errorf("user search by API key failed: %w", err)
	}

	return foundUser, nil
}
