package service

import (
	"context"
	"fmt"

	"vocabot/internal/domain"
	"vocabot/internal/repository"
	"vocabot/internal/state"

	"go.uber.org/zap"
)

// StatsService reports usage totals
type StatsService struct {
	store  repository.Store
	state  *state.State
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(store repository.Store, st *state.State, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:  store,
		state:  st,
		logger: logger,
	}
}

// Report collects store totals and logs them
func (s *StatsService) Report(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	err := repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		var err error
		stats, err = conn.Stats(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to collect stats", zap.Error(err))
		return domain.Stats{}, fmt.Errorf("collect stats: %w", err)
	}

	s.logger.Info("Daily stats",
		zap.Int("users", stats.Users),
		zap.Int("words", stats.Words),
		zap.Int("schedule_entries", stats.ScheduleEntries),
		zap.Int("cached_users", s.state.Users.Len()),
	)
	return stats, nil
}
