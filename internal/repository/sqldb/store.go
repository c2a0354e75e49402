package sqldb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vocabot/internal/repository"

	"github.com/jmoiron/sqlx"
)

// Store implements repository.Store on top of a pooled sqlx.DB.
// It works with both the postgres and sqlite3 drivers.
type Store struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewStore creates a new store. Every query is bounded by timeout when it is positive.
func NewStore(db *sqlx.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

// Conn returns a new disconnected handle
func (s *Store) Conn() repository.Conn {
	return &Conn{db: s.db, timeout: s.timeout}
}

// Conn is a storage handle holding a dedicated pool connection while connected
type Conn struct {
	db      *sqlx.DB
	timeout time.Duration

	mu   sync.Mutex
	conn *sqlx.Conn
}

// Connect acquires a dedicated connection from the pool
func (c *Conn) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return repository.ErrAlreadyConnected
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	conn, err := c.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	c.conn = conn
	return nil
}

// Disconnect returns the connection to the pool
func (c *Conn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return repository.ErrAlreadyDisconnected
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}

// active returns the live connection or ErrStorageUnavailable
func (c *Conn) active() (*sqlx.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, repository.ErrStorageUnavailable
	}
	return c.conn, nil
}

func (c *Conn) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// query rewrites ? placeholders into the driver's bindvar style
func (c *Conn) query(q string) string {
	return c.db.Rebind(q)
}
