package service

import (
	"context"
	"ctchen222/travel-assistant/internal/api/models"
	"ctchen222/travel-assistant/internal/api/repository"
	"ctchen222/travel-assistant/internal/provider"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

//go:generate mockgen -source=assistant_service.go -destination=../../mocks/mock_assistant_service.go -package=mocks

var meter = otel.Meter("api.service")

// DefaultAskTimeout bounds provider calls when no timeout is configured.
const DefaultAskTimeout = 30 * time.Second

// AssistantService defines the interface for asking questions and reading history.
type AssistantService interface {
	Ask(ctx context.Context, userID, question string) (string, error)
	History(ctx context.Context, userID string) ([]models.HistoryEntry, error)
}

type assistantService struct {
	requestRepo repository.RequestRepository
	completer   provider.Completer
	timeout     time.Duration
	asks        metric.Int64Counter
}

// NewAssistantService creates a new AssistantService. Every provider call is bounded by timeout.
func NewAssistantService(requestRepo repository.RequestRepository, completer provider.Completer, timeout time.Duration) AssistantService {
	if timeout <= 0 {
		timeout = DefaultAskTimeout
	}
	asks, err := meter.Int64Counter("assistant.asks",
		metric.WithDescription("Questions sent to the AI provider, by outcome."))
	if err != nil {
		otel.Handle(err)
	}
	return &assistantService{
		requestRepo: requestRepo,
		completer:   completer,
		timeout:     timeout,
		asks:        asks,
	}
}

// Ask forwards question to the provider and records the answer for userID.
// The request row is written only after the provider call has returned.
func (s *assistantService) Ask(ctx context.Context, userID, question string) (string, error) {
	ctx, span := tracer.Start(ctx, "AssistantService.Ask")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	answer, err := s.completer.Complete(callCtx, question)
	cancel()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call failed")
		s.countAsk(ctx, "upstream_error")
		slog.ErrorContext(ctx, "AI provider call failed", "user.id", userID, "error", err)
		return "", &UpstreamError{Err: err}
	}

	if _, err := s.requestRepo.CreateRequest(ctx, userID, question, answer); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save request")
		s.countAsk(ctx, "store_error")
		return "", fmt.Errorf("failed to save request: %w", err)
	}

	s.countAsk(ctx, "ok")
	return answer, nil
}

// History returns the user's questions and answers, newest first.
func (s *assistantService) History(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	ctx, span := tracer.Start(ctx, "AssistantService.History")
	defer span.End()

	requests, err := s.requestRepo.ListRequestsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(requests))
	for _, r := range requests {
		entries = append(entries, models.HistoryEntry{Question: r.Question, Response: r.Response})
	}
	return entries, nil
}

func (s *assistantService) countAsk(ctx context.Context, outcome string) {
	if s.asks == nil {
		return
	}
	s.asks.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
