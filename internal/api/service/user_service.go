package service

import (
	"context"
	"ctchen222/travel-assistant/internal/api/repository"
	"ctchen222/travel-assistant/internal/auth"
	"errors"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel"
)

//go:generate mockgen -source=user_service.go -destination=../../mocks/mock_user_service.go -package=mocks

var tracer = otel.Tracer("api.service")

// UserService defines the interface for registration and login.
type UserService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a user with a hashed password. No token is issued.
func (s *userService) Register(ctx context.Context, email, password string) error {
	ctx, span := tracer.Start(ctx, "UserService.Register")
	defer span.End()

	if len(password) > auth.MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	// Check if user already exists
	existingUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return ErrConflict
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user, err := s.userRepo.CreateUser(ctx, email, hashed)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return ErrConflict
		}
		return err
	}

	slog.InfoContext(ctx, "User registered", "user.id", user.ID)
	return nil
}

// Login verifies the credentials and returns a bearer token carrying the user's id.
func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	ctx, span := tracer.Start(ctx, "UserService.Login")
	defer span.End()

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Verify(password, user.HashedPassword) {
		return "", ErrUnauthorized
	}

	return s.tokens.IssueForUser(strconv.FormatInt(user.ID, 10))
}
