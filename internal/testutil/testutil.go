package testutil

import (
	"context"
	"testing"

	"vocabot/internal/domain"
	"vocabot/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word pair
func NewTestWord(source, target string) domain.WordPair {
	return domain.WordPair{Source: source, Target: target}
}

// Seed registers userID in store with the given words and schedule
func Seed(t *testing.T, store repository.Store, userID int64, words []domain.WordPair, schedule ...string) {
	t.Helper()

	ctx := context.Background()
	err := repository.WithConn(ctx, store, func(conn repository.Conn) error {
		if _, err := conn.Register(ctx, userID); err != nil {
			return err
		}
		if err := conn.AddWords(ctx, userID, words); err != nil {
			return err
		}
		for _, at := range schedule {
			if err := conn.AddScheduleEntry(ctx, userID, domain.MustTimeOfDay(at)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}
