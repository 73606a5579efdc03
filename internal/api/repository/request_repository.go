package repository

import (
	"context"
	"ctchen222/travel-assistant/internal/api/models"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=request_repository.go -destination=../../mocks/mock_request_repository.go -package=mocks

// RequestRepository defines the interface for the question/answer log.
type RequestRepository interface {
	CreateRequest(ctx context.Context, userID, question, response string) (*models.UserRequest, error)
	ListRequestsByUser(ctx context.Context, userID string) ([]models.UserRequest, error)
}

type sqlRequestRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewRequestRepository creates a new SQL-backed RequestRepository.
func NewRequestRepository(db *sqlx.DB) RequestRepository {
	return &sqlRequestRepository{db: db, now: time.Now}
}

// CreateRequest stores one answered question, stamped with the insert time.
func (r *sqlRequestRepository) CreateRequest(ctx context.Context, userID, question, response string) (*models.UserRequest, error) {
	ctx, span := tracer.Start(ctx, "RequestRepository.CreateRequest")
	defer span.End()

	req := &models.UserRequest{
		UserID:    userID,
		Question:  question,
		Response:  response,
		Timestamp: r.now().UTC(),
	}

	query := r.db.Rebind(`INSERT INTO user_requests (user_id, question, response, timestamp) VALUES (?, ?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, req.UserID, req.Question, req.Response, req.Timestamp).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("failed to create user request: %w", err)
	}
	return req, nil
}

// ListRequestsByUser returns every request of userID, newest first. No rows yields an empty slice.
func (r *sqlRequestRepository) ListRequestsByUser(ctx context.Context, userID string) ([]models.UserRequest, error) {
	ctx, span := tracer.Start(ctx, "RequestRepository.ListRequestsByUser")
	defer span.End()

	requests := []models.UserRequest{}
	query := r.db.Rebind(`SELECT id, user_id, question, response, timestamp FROM user_requests WHERE user_id = ? ORDER BY id DESC`)
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user requests: %w", err)
	}
	return requests, nil
}
