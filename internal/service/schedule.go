package service

import (
	"context"
	"fmt"

	"vocabot/internal/domain"
	"vocabot/internal/repository"

	"go.uber.org/zap"
)

// ScheduleService manages the times of day users are quizzed at
type ScheduleService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(store repository.Store, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		store:  store,
		logger: logger,
	}
}

// AddTime validates raw as HH:MM:SS and adds it to the user's schedule.
// Invalid input fails with domain.ErrInvalidTimeFormat and changes nothing.
func (s *ScheduleService) AddTime(ctx context.Context, userID int64, raw string) (domain.TimeOfDay, error) {
	at, err := domain.ParseTimeOfDay(raw)
	if err != nil {
		return 0, err
	}

	err = repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		return conn.AddScheduleEntry(ctx, userID, at)
	})
	if err != nil {
		return 0, fmt.Errorf("add schedule entry: %w", err)
	}

	s.logger.Info("Schedule time added",
		zap.Int64("user_id", userID),
		zap.Stringer("time", at),
	)
	return at, nil
}

// DeleteTime removes a time from the user's schedule.
// The bool is false if the time was not scheduled.
func (s *ScheduleService) DeleteTime(ctx context.Context, userID int64, raw string) (domain.TimeOfDay, bool, error) {
	at, err := domain.ParseTimeOfDay(raw)
	if err != nil {
		return 0, false, err
	}

	var removed int64
	err = repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		var err error
		removed, err = conn.DeleteScheduleEntry(ctx, userID, at)
		return err
	})
	if err != nil {
		return 0, false, fmt.Errorf("delete schedule entry: %w", err)
	}

	return at, removed > 0, nil
}

// ListSchedule returns the user's schedule in ascending order
func (s *ScheduleService) ListSchedule(ctx context.Context, userID int64) ([]domain.TimeOfDay, error) {
	var times []domain.TimeOfDay
	err := repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		var err error
		times, err = conn.ListSchedule(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return times, nil
}
