package clients

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dayflower/todo-star-slack-bot/models"
)

// MockSlackClient is a mock implementation of SlackClient
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) AuthTest(ctx context.Context) (*SlackAuthTestResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SlackAuthTestResponse), args.Error(1)
}

func (m *MockSlackClient) AddReaction(ctx context.Context, name string, item models.SlackItemRef) error {
	args := m.Called(ctx, name, item)
	return args.Error(0)
}

func (m *MockSlackClient) AddStar(ctx context.Context, item models.SlackItemRef) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSlackClient) RemoveStar(ctx context.Context, item models.SlackItemRef) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSlackClient) GetItem(ctx context.Context, item models.SlackItemRef) (*models.SlackItemRecord, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SlackItemRecord), args.Error(1)
}
