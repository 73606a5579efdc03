package service

import (
	"context"
	"ctchen222/travel-assistant/internal/api/models"
	"ctchen222/travel-assistant/internal/mocks"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssistantService(t *testing.T, timeout time.Duration) (AssistantService, *mocks.MockRequestRepository, *mocks.MockCompleter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRequestRepository(ctrl)
	completer := mocks.NewMockCompleter(ctrl)
	return NewAssistantService(repo, completer, timeout), repo, completer
}

func TestAssistantService_Ask(t *testing.T) {
	svc, repo, completer := newTestAssistantService(t, time.Second)
	question := "Do I need a visa for France?"
	answer := "No visa needed for short stays."

	gomock.InOrder(
		completer.EXPECT().Complete(gomock.Any(), question).Return(answer, nil),
		repo.EXPECT().CreateRequest(gomock.Any(), "1", question, answer).
			Return(&models.UserRequest{ID: 1, UserID: "1", Question: question, Response: answer}, nil),
	)

	got, err := svc.Ask(context.Background(), "1", question)
	require.NoError(t, err)
	assert.Equal(t, answer, got)
}

func TestAssistantService_AskBoundsProviderCall(t *testing.T) {
	svc, _, completer := newTestAssistantService(t, 20*time.Millisecond)

	completer.EXPECT().Complete(gomock.Any(), "slow").
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := svc.Ask(context.Background(), "1", "slow")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAssistantService_AskUpstreamErrorSkipsStore(t *testing.T) {
	svc, _, completer := newTestAssistantService(t, time.Second)
	providerErr := errors.New("quota exceeded")

	completer.EXPECT().Complete(gomock.Any(), "q").Return("", providerErr)

	_, err := svc.Ask(context.Background(), "1", "q")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.ErrorIs(t, err, providerErr)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAssistantService_AskStoreError(t *testing.T) {
	svc, repo, completer := newTestAssistantService(t, time.Second)

	completer.EXPECT().Complete(gomock.Any(), "q").Return("a", nil)
	repo.EXPECT().CreateRequest(gomock.Any(), "1", "q", "a").Return(nil, errors.New("disk full"))

	_, err := svc.Ask(context.Background(), "1", "q")
	require.Error(t, err)

	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
}

func TestAssistantService_DefaultTimeout(t *testing.T) {
	svc := NewAssistantService(nil, nil, 0).(*assistantService)
	assert.Equal(t, DefaultAskTimeout, svc.timeout)
}

func TestAssistantService_History(t *testing.T) {
	svc, repo, _ := newTestAssistantService(t, time.Second)

	repo.EXPECT().ListRequestsByUser(gomock.Any(), "1").Return([]models.UserRequest{
		{ID: 2, UserID: "1", Question: "q2", Response: "r2", Timestamp: time.Now()},
		{ID: 1, UserID: "1", Question: "q1", Response: "r1", Timestamp: time.Now()},
	}, nil)

	got, err := svc.History(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []models.HistoryEntry{
		{Question: "q2", Response: "r2"},
		{Question: "q1", Response: "r1"},
	}, got)
}

func TestAssistantService_HistoryEmpty(t *testing.T) {
	svc, repo, _ := newTestAssistantService(t, time.Second)

	repo.EXPECT().ListRequestsByUser(gomock.Any(), "1").Return([]models.UserRequest{}, nil)

	got, err := svc.History(context.Background(), "1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssistantService_HistoryError(t *testing.T) {
	svc, repo, _ := newTestAssistantService(t, time.Second)
	dbErr := errors.New("db down")

	repo.EXPECT().ListRequestsByUser(gomock.Any(), "1").Return(nil, dbErr)

	_, err := svc.History(context.Background(), "1")
	assert.ErrorIs(t, err, dbErr)
}
