package service

import (
	"context"
	"fmt"

	"vocabot/internal/domain"
	"vocabot/internal/repository"
	"vocabot/internal/state"

	"go.uber.org/zap"
)

// UserService handles registration
type UserService struct {
	store  repository.Store
	state  *state.State
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(store repository.Store, st *state.State, logger *zap.Logger) *UserService {
	return &UserService{
		store:  store,
		state:  st,
		logger: logger,
	}
}

// Register stores the user and caches it as registered.
// Returns true if the user is new. New users start answering quizzes,
// known users keep their current mode.
func (s *UserService) Register(ctx context.Context, userID int64) (bool, error) {
	var created bool
	err := repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		var err error
		created, err = conn.Register(ctx, userID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("register user: %w", err)
	}

	s.state.Users.Add(userID)
	if created {
		s.state.Modes.Set(userID, domain.ModeAwaitingAnswer)
		s.logger.Info("User registered", zap.Int64("user_id", userID))
	} else {
		s.state.Modes.Init(userID, domain.ModeAwaitingAnswer)
	}

	return created, nil
}

// IsRegistered checks the in-memory registration cache only
func (s *UserService) IsRegistered(userID int64) bool {
	return s.state.Users.Contains(userID)
}

// LoadRegistered fills the registration cache from the store.
// Returns the number of users loaded.
func (s *UserService) LoadRegistered(ctx context.Context) (int, error) {
	var ids []int64
	err := repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		var err error
		ids, err = conn.ListUserIDs(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}

	s.state.Users.Load(ids)
	for _, id := range ids {
		s.state.Modes.Init(id, domain.ModeAwaitingAnswer)
	}

	return len(ids), nil
}
