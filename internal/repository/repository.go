package repository

import (
	"context"
	"errors"
	"fmt"

	"vocabot/internal/domain"
)

var (
	// ErrStorageUnavailable is returned by queries on a disconnected handle
	ErrStorageUnavailable = errors.New("storage unavailable: handle is not connected")
	// ErrAlreadyConnected is returned by Connect on a connected handle
	ErrAlreadyConnected = errors.New("storage handle already connected")
	// ErrAlreadyDisconnected is returned by Disconnect on a disconnected handle
	ErrAlreadyDisconnected = errors.New("storage handle already disconnected")
)

// Store hands out storage handles. Each logical operation should take its
// own handle, connect it, and disconnect it when done.
type Store interface {
	Conn() Conn
}

// Conn is a two-state storage handle (disconnected -> connected -> disconnected).
// Query methods fail with ErrStorageUnavailable unless the handle is connected.
type Conn interface {
	Connect(ctx context.Context) error
	Disconnect() error

	Register(ctx context.Context, userID int64) (bool, error)
	IsRegistered(ctx context.Context, userID int64) (bool, error)
	ListUserIDs(ctx context.Context) ([]int64, error)

	AddWords(ctx context.Context, userID int64, words []domain.WordPair) error
	ListWords(ctx context.Context, userID int64) ([]domain.WordPair, error)
	RandomWord(ctx context.Context, userID int64) (domain.WordPair, bool, error)

	AddScheduleEntry(ctx context.Context, userID int64, at domain.TimeOfDay) error
	DeleteScheduleEntry(ctx context.Context, userID int64, at domain.TimeOfDay) (int64, error)
	ListSchedule(ctx context.Context, userID int64) ([]domain.TimeOfDay, error)
	NextScheduleEntryAfter(ctx context.Context, userID int64, at domain.TimeOfDay) (domain.TimeOfDay, bool, error)

	Stats(ctx context.Context) (domain.Stats, error)
}

// WithConn connects a fresh handle, runs fn and always disconnects it
func WithConn(ctx context.Context, store Store, fn func(Conn) error) (err error) {
	conn := store.Conn()
	if err := conn.Connect(ctx); err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer func() {
		if derr := conn.Disconnect(); derr != nil && err == nil {
			err = fmt.Errorf("disconnect store: %w", derr)
		}
	}()

	return fn(conn)
}
