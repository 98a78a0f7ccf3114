package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/dto"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/repository"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/token"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	BcryptCost int
}

// AuthService defines the interface for account and session operations
type AuthService interface {
	// Register creates a new user account
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	// Login verifies credentials and issues a session token
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error)
	// CurrentUser retrieves the user behind a set of session claims
	CurrentUser(ctx context.Context, claims *domain.Claims) (*domain.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	config   *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	tokens *token.Manager,
	config *AuthServiceConfig,
) AuthService {
	if config == nil {
		config = &AuthServiceConfig{}
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
	}
}

// Register creates a new user account. The caller still has to log in
// afterwards; registration does not start a session.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Register")
	defer span.End()
	span.SetAttributes(attribute.String("user.role", req.Role))

	exists, err := s.userRepo.ExistsByEmail(ctx, req.PersonalInfo.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.PersonalInfo.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.Role(req.Role),
		FullName:     req.PersonalInfo.FullName,
		PhoneNumber:  req.PersonalInfo.PhoneNumber,
		Address:      req.PersonalInfo.Address,
		Province:     req.PersonalInfo.Province,
		City:         req.PersonalInfo.City,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error) {
	ctx, span := telemetry.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.userRepo.GetByEmailOrUsername(ctx, req.EmailOrUsername)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrIncorrectPassword
	}

	sessionToken, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, sessionToken, nil
}

// CurrentUser retrieves the user behind a set of session claims
func (s *authService) CurrentUser(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
