package todostar

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dayflower/todo-star-slack-bot/models"
)

// MockTodoStarUseCase is a mock implementation of TodoStarUseCase
type MockTodoStarUseCase struct {
	mock.Mock
}

func (m *MockTodoStarUseCase) ProcessMessageEvent(ctx context.Context, event models.SlackMessageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTodoStarUseCase) ProcessReactionAdded(ctx context.Context, event models.SlackReactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTodoStarUseCase) ProcessReactionRemoved(ctx context.Context, event models.SlackReactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
