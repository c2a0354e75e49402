package sqldb

import (
	"context"

	"vocabot/internal/domain"
)

// Register creates the user if it does not exist yet.
// Returns true when a new user was created.
func (c *Conn) Register(ctx context.Context, userID int64) (bool, error) {
	conn, err := c.active()
	if err != nil {
		return false, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := c.query(`
		INSERT INTO users (user_id)
		VALUES (?)
		ON CONFLICT (user_id) DO NOTHING
	`)
	res, err := conn.ExecContext(ctx, query, userID)
	if err != nil {
		return false, err
	}

	created, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return created > 0, nil
}

// IsRegistered checks if user exists
func (c *Conn) IsRegistered(ctx context.Context, userID int64) (bool, error) {
	conn, err := c.active()
	if err != nil {
		return false, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var exists bool
	query := c.query(`SELECT EXISTS(SELECT 1 FROM users WHERE user_id = ?)`)
	if err := conn.GetContext(ctx, &exists, query, userID); err != nil {
		return false, err
	}
	return exists, nil
}

// ListUserIDs returns ids of all registered users
func (c *Conn) ListUserIDs(ctx context.Context) ([]int64, error) {
	conn, err := c.active()
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var ids []int64
	if err := conn.SelectContext(ctx, &ids, `SELECT user_id FROM users ORDER BY user_id`); err != nil {
		return nil, err
	}
	return ids, nil
}

// Stats returns totals across all users
func (c *Conn) Stats(ctx context.Context) (domain.Stats, error) {
	conn, err := c.active()
	if err != nil {
		return domain.Stats{}, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var stats domain.Stats
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM words) AS words,
			(SELECT COUNT(*) FROM schedule) AS schedule_entries
	`
	if err := conn.GetContext(ctx, &stats, query); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}
