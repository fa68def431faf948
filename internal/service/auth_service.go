package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/repository"
	"wildcats_backend/internal/utils"
	"wildcats_backend/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyExists  = errors.New("username or email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("username and password are required")
)

// ValidationError carries the ordered rule violations for a 400 response.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Errors)
}

// AuthService verifies credentials and mints bearer tokens. Operator
// accounts come from configuration and live only in memory; client accounts
// are stored with bcrypt hashes.
type AuthService interface {
	LoginAdmin(username, password string) (token, role string, err error)
	RegisterClient(username, email, password string) (*model.Client, error)
	LoginClient(usernameOrEmail, password string) (*model.Client, string, error)
}

type authService struct {
	accounts   []model.AdminAccount
	clientRepo repository.ClientRepository
	jwtUtil    *utils.JWTUtil
}

// NewAuthService creates a new AuthService. The account list is the
// immutable slice built by config.Load; the service never mutates it.
func NewAuthService(accounts []model.AdminAccount, clientRepo repository.ClientRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		accounts:   accounts,
		clientRepo: clientRepo,
		jwtUtil:    jwtUtil,
	}
}

// LoginAdmin scans the configured operator accounts. Both fields go through
// a constant-time compare so the scan does not leak which half matched.
func (s *authService) LoginAdmin(username, password string) (string, string, error) {
	for _, account := range s.accounts {
		userOK := subtle.ConstantTimeCompare([]byte(account.Username), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) == 1
		if userOK && passOK {
			token, err := s.jwtUtil.GenerateToken(account.Username, account.Role, "")
			if err != nil {
				return "", "", fmt.Errorf("failed to generate token: %w", err)
			}
			return token, account.Role, nil
		}
	}
	return "", "", ErrInvalidCredentials
}

// RegisterClient creates a client account. Username and email uniqueness is
// case-insensitive and enforced under the collection's writer lock.
func (s *authService) RegisterClient(username, email, password string) (*model.Client, error) {
	var violations []string
	username = strings.TrimSpace(username)
	if len(username) < 2 {
		violations = append(violations, "Username is required and must be at least 2 characters long")
	}
	normalizedEmail, emailOK := validate.Email(email)
	if !emailOK {
		violations = append(violations, "A valid email address is required")
	}
	if len(password) < 6 {
		violations = append(violations, "Password must be at least 6 characters long")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Errors: violations}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	client := &model.Client{
		ID:           uuid.NewString(),
		Username:     validate.Truncate(username, 100),
		Email:        normalizedEmail,
		PasswordHash: hash,
		Role:         model.RoleClient,
		CreatedAt:    time.Now(),
	}

	inserted, err := s.clientRepo.CreateUnique(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	if !inserted {
		return nil, ErrUserAlreadyExists
	}
	return client, nil
}

// LoginClient authenticates by username or email, case-insensitively.
func (s *authService) LoginClient(usernameOrEmail, password string) (*model.Client, string, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	client, err := s.clientRepo.FindByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		return nil, "", fmt.Errorf("error finding client: %w", err)
	}
	if client == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, client.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(client.Username, client.Role, client.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return client, token, nil
}
