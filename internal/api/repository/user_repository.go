package repository

import (
	"context"
	"ctchen222/travel-assistant/internal/api/models"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

//go:generate mockgen -source=user_repository.go -destination=../../mocks/mock_user_repository.go -package=mocks

var tracer = otel.Tracer("api.repository")

// ErrEmailTaken is returned by CreateUser when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, email, hashedPassword string) (*models.User, error)
}

type sqlUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQL-backed UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqlUserRepository{db: db}
}

// GetUserByEmail retrieves a user by email. It returns nil, nil when no user exists.
func (r *sqlUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetUserByEmail")
	defer span.End()

	var user models.User
	query := r.db.Rebind(`SELECT id, email, hashed_password FROM users WHERE email = ?`)
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No user found is not an application error
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user. The email is checked first so a duplicate surfaces as
// ErrEmailTaken; a unique violation from a concurrent insert is mapped the same way.
func (r *sqlUserRepository) CreateUser(ctx context.Context, email, hashedPassword string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.CreateUser")
	defer span.End()

	existing, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &models.User{Email: email, HashedPassword: hashedPassword}
	query := r.db.Rebind(`INSERT INTO users (email, hashed_password) VALUES (?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, email, hashedPassword).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
