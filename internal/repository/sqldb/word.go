package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vocabot/internal/domain"
)

// AddWords appends word pairs for the user in a single transaction.
// Duplicates are kept.
func (c *Conn) AddWords(ctx context.Context, userID int64, words []domain.WordPair) error {
	conn, err := c.active()
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	query := c.query(`
		INSERT INTO words (user_id, source_text, target_text)
		VALUES (?, ?, ?)
	`)
	for _, w := range words {
		if _, err := tx.ExecContext(ctx, query, userID, w.Source, w.Target); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert word %q: %w", w.Source, err)
		}
	}

	return tx.Commit()
}

// ListWords returns all word pairs of the user in upload order
func (c *Conn) ListWords(ctx context.Context, userID int64) ([]domain.WordPair, error) {
	conn, err := c.active()
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var words []domain.WordPair
	query := c.query(`
		SELECT source_text, target_text
		FROM words
		WHERE user_id = ?
		ORDER BY id
	`)
	if err := conn.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, err
	}
	return words, nil
}

// RandomWord returns a uniformly chosen word pair of the user.
// The bool is false when the user has no words.
func (c *Conn) RandomWord(ctx context.Context, userID int64) (domain.WordPair, bool, error) {
	conn, err := c.active()
	if err != nil {
		return domain.WordPair{}, false, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var w domain.WordPair
	query := c.query(`
		SELECT source_text, target_text
		FROM words
		WHERE user_id = ?
		ORDER BY RANDOM()
		LIMIT 1
	`)
	err = conn.GetContext(ctx, &w, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.WordPair{}, false, nil
	}
	if err != nil {
		return domain.WordPair{}, false, err
	}

	return w, true, nil
}
