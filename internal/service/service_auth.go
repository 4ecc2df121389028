package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlevchuk/noteapp/internal/config"
	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/store"
	"github.com/mlevchuk/noteapp/internal/utils"
	"github.com/mlevchuk/noteapp/internal/validators"
	"github.com/mlevchuk/noteapp/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login payloads before any
	// expensive work (hashing, database calls) is done.
	validator *validators.AuthValidator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the cost factor applied when hashing passwords.
	// Hashing is deliberately slow; it must not be short-circuited.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewAuthValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the email syntax and the password length, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// The returned user carries only public fields; the password hash is
// cleared before it leaves the service.
//
// Returns:
//   - *validators.ValidationError if the payload is malformed.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateRegister(req); err != nil {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// only public fields leave the service
	registeredUser.PasswordHash = ""

	return registeredUser, nil
}

// Login authenticates an existing user and issues a signed token.
//
// It validates the payload, looks up the account by email, and compares
// the stored bcrypt hash against the supplied password. A missing account
// and a failed comparison both collapse into ErrInvalidCredentials so the
// two cases are indistinguishable to the caller.
//
// Returns:
//   - *validators.ValidationError if the payload is malformed.
//   - ErrInvalidCredentials if the email is unknown or the password wrong.
//   - ErrTokenCreationFailed (wrapped) if JWT signing fails.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateLogin(req); err != nil {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.LoginResponse{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.LoginResponse{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("creation of token failed")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResponse{
		Token: token.SignedString,
		Name:  foundUser.Name,
		Email: foundUser.Email,
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
