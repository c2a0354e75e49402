package testutil

import (
	"context"

	"vocabot/internal/domain"
	"vocabot/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock for repository.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Conn() repository.Conn {
	args := m.Called()
	return args.Get(0).(repository.Conn)
}

// MockConn is a mock for repository.Conn
type MockConn struct {
	mock.Mock
}

func (m *MockConn) Connect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConn) Disconnect() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockConn) Register(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockConn) IsRegistered(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockConn) ListUserIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockConn) AddWords(ctx context.Context, userID int64, words []domain.WordPair) error {
	args := m.Called(ctx, userID, words)
	return args.Error(0)
}

func (m *MockConn) ListWords(ctx context.Context, userID int64) ([]domain.WordPair, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockConn) RandomWord(ctx context.Context, userID int64) (domain.WordPair, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.WordPair), args.Bool(1), args.Error(2)
}

func (m *MockConn) AddScheduleEntry(ctx context.Context, userID int64, at domain.TimeOfDay) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockConn) DeleteScheduleEntry(ctx context.Context, userID int64, at domain.TimeOfDay) (int64, error) {
	args := m.Called(ctx, userID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConn) ListSchedule(ctx context.Context, userID int64) ([]domain.TimeOfDay, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeOfDay), args.Error(1)
}

func (m *MockConn) NextScheduleEntryAfter(ctx context.Context, userID int64, at domain.TimeOfDay) (domain.TimeOfDay, bool, error) {
	args := m.Called(ctx, userID, at)
	return args.Get(0).(domain.TimeOfDay), args.Bool(1), args.Error(2)
}

func (m *MockConn) Stats(ctx context.Context) (domain.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Stats), args.Error(1)
}

// MockSender is a mock for notifier.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, userID int64, text string) error {
	args := m.Called(ctx, userID, text)
	return args.Error(0)
}

// MockNotifier is a mock for the quiz notifier used by services and the dispatcher
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userIDs []int64, words map[int64]domain.WordPair) error {
	args := m.Called(ctx, userIDs, words)
	return args.Error(0)
}
