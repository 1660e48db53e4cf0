package customer

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"centrodrinks/internal/domain"
	custrepo "centrodrinks/internal/repository/customer"
	profilerepo "centrodrinks/internal/repository/profile"
	tokenrepo "centrodrinks/internal/repository/token"
)

// Typed sign-in/sign-up failures. The HTTP layer maps each one to a fixed
// user-facing message.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongCredential = errors.New("wrong credential")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmailInUse      = errors.New("email already in use")
	ErrWeakPassword    = errors.New("weak password")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

const (
	tokenKindAccess = "access"
	tokenKindReset  = "reset"
)

// Service handles registration, login and password-reset flows.
type Service struct {
	repo        custrepo.Repository
	profiles    profilerepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	resetTTL    time.Duration
	passwordMin int
}

func New(repo custrepo.Repository, profiles profilerepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		profiles:    profiles,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		resetTTL:    time.Hour,
		passwordMin: 6,
	}
}

// RegisterInput captures the sign-up form. Name, age, email and password
// are required; the rest bootstraps the profile.
type RegisterInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Age          string `json:"age"`
	Nickname     string `json:"nickname"`
	Street       string `json:"street"`
	Phone        string `json:"phone"`
	LocationNote string `json:"locationNote"`
}

// Register creates the credential record and the initial profile.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(in.Age) == "" {
		return nil, &domain.ValidationError{Field: "age", Reason: "required"}
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < s.passwordMin {
		return nil, ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.Create(ctx, email, string(hashed))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrEmailInUse
		}
		return nil, &domain.PersistenceError{Op: "create customer", Err: err}
	}

	profile := domain.Profile{
		UID:          c.UID,
		Name:         strings.TrimSpace(in.Name),
		Age:          strings.TrimSpace(in.Age),
		Nickname:     strings.TrimSpace(in.Nickname),
		Street:       strings.TrimSpace(in.Street),
		Phone:        strings.TrimSpace(in.Phone),
		LocationNote: strings.TrimSpace(in.LocationNote),
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, &domain.PersistenceError{Op: "create profile", Err: err}
	}
	return c, nil
}

// Login verifies the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", nil, err
	}

	c, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, &domain.PersistenceError{Op: "get customer", Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrWrongCredential
	}

	token, err := s.tokens.Issue(ctx, c.UID, tokenKindAccess, s.accessTTL)
	if err != nil {
		return "", nil, err
	}
	return token, c, nil
}

// RequestPasswordReset issues a short-lived reset token for the account.
// Mailing the token to the user is handled outside this service.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	c, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", &domain.PersistenceError{Op: "get customer", Err: err}
	}
	return s.tokens.Issue(ctx, c.UID, tokenKindReset, s.resetTTL)
}

// Authenticate resolves a bearer token to the owning uid.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	uid, ok := s.tokens.Validate(ctx, token, tokenKindAccess)
	if !ok {
		return "", ErrInvalidToken
	}
	return uid, nil
}

// Logout revokes an access token. Revoking an unknown token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(strings.ToLower(email))
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", ErrInvalidEmail
	}
	return trimmed, nil
}
