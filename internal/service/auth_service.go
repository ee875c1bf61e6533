package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// CredentialReader looks up accounts by email for login.
type CredentialReader interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthService verifies credentials and issues admin session tokens.
type AuthService struct {
	users CredentialReader
}

// NewAuthService constructs an AuthService.
func NewAuthService(users CredentialReader) *AuthService {
	return &AuthService{users: users}
}

// LoginResult carries the issued token and the authenticated account.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login verifies the password and returns a signed token. The token
// carries the role claim; the ADMIN gate lives in middleware.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("email", email).Msg("Failed to look up account")
		}
		return nil, utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Msg("Login successful")
	return &LoginResult{Token: token, User: user}, nil
}
