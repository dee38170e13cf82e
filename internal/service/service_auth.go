package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/store"
	"github.com/MKhiriev/go-car-share/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the opaque
// bearer-token lifecycle, using a UserRepository for persistence, bcrypt for
// password hashing, and the in-memory [TokenRegistry] for issued tokens.
type authService struct {
	sessions       *store.Sessions
	userRepository store.UserRepository
	tokens         *TokenRegistry
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and token registry.
//
// The returned service is safe for concurrent use; the registry does its own
// locking and everything else is read-only after construction.
func NewAuthService(sessions *store.Sessions, userRepository store.UserRepository, tokens *TokenRegistry, logger *logger.Logger) AuthService {
	return &authService{
		sessions:       sessions,
		userRepository: userRepository,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password is hashed with bcrypt (salted, one-way) before anything is
// persisted; the plaintext never reaches the store or the logs. The returned
// user is the public projection — its hash field never serializes.
//
// Errors:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameTaken if the username already exists.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	var registered models.User
	err = a.sessions.Run(ctx, func(sess *store.Session) error {
		registered, err = a.userRepository.CreateUser(ctx, sess, models.User{
			Username:     creds.Username,
			PasswordHash: string(hash),
		})
		return err
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, err
	}

	return registered, nil
}

// Login authenticates an existing user and issues a fresh opaque token.
//
// A missing user and a failed password verification both collapse into
// ErrInvalidCredentials so the response does not leak which check failed.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid credentials provided")
		return models.Token{}, ErrInvalidCredentials
	}

	var foundUser models.User
	err := a.sessions.Run(ctx, func(sess *store.Session) error {
		var err error
		foundUser, err = a.userRepository.FindUserByUsername(ctx, sess, creds.Username)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", creds.Username).Msg("login attempt for unknown user")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(foundUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token issuance failed")
		return models.Token{}, err
	}

	return models.Token{
		AccessToken: token,
		TokenType:   models.BearerTokenType,
	}, nil
}

// Resolve maps a presented token back to its user. This is the capability
// every protected operation depends on; it performs no database write.
//
// An unknown token and a token whose user has since disappeared both yield
// ErrInvalidToken.
func (a *authService) Resolve(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, ok := a.tokens.Lookup(token)
	if !ok {
		return models.User{}, ErrInvalidToken
	}

	var user models.User
	err := a.sessions.Run(ctx, func(sess *store.Session) error {
		var err error
		user, err = a.userRepository.FindUserByID(ctx, sess, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Int64("id", userID).Msg("token references a missing user")
			return models.User{}, ErrInvalidToken
		}
		log.Err(err).Int64("id", userID).Msg("user lookup by id failed")
		return models.User{}, fmt.Errorf("user lookup by id failed: %w", err)
	}

	return user, nil
}
