package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"vocabot/internal/domain"
)

// AddScheduleEntry adds a time to the user's schedule, ignoring duplicates
func (c *Conn) AddScheduleEntry(ctx context.Context, userID int64, at domain.TimeOfDay) error {
	conn, err := c.active()
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := c.query(`
		INSERT INTO schedule (user_id, time_of_day)
		VALUES (?, ?)
		ON CONFLICT (user_id, time_of_day) DO NOTHING
	`)
	_, err = conn.ExecContext(ctx, query, userID, at)
	return err
}

// DeleteScheduleEntry removes a time from the user's schedule and
// returns how many entries were removed.
func (c *Conn) DeleteScheduleEntry(ctx context.Context, userID int64, at domain.TimeOfDay) (int64, error) {
	conn, err := c.active()
	if err != nil {
		return 0, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query := c.query(`DELETE FROM schedule WHERE user_id = ? AND time_of_day = ?`)
	res, err := conn.ExecContext(ctx, query, userID, at)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListSchedule returns the user's schedule in ascending order
func (c *Conn) ListSchedule(ctx context.Context, userID int64) ([]domain.TimeOfDay, error) {
	conn, err := c.active()
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var times []domain.TimeOfDay
	query := c.query(`
		SELECT time_of_day
		FROM schedule
		WHERE user_id = ?
		ORDER BY time_of_day
	`)
	if err := conn.SelectContext(ctx, &times, query, userID); err != nil {
		return nil, err
	}
	return times, nil
}

// NextScheduleEntryAfter returns the earliest schedule time strictly after at.
// There is no wraparound: the bool is false when nothing is left today.
func (c *Conn) NextScheduleEntryAfter(ctx context.Context, userID int64, at domain.TimeOfDay) (domain.TimeOfDay, bool, error) {
	conn, err := c.active()
	if err != nil {
		return 0, false, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var next domain.TimeOfDay
	query := c.query(`
		SELECT time_of_day
		FROM schedule
		WHERE user_id = ? AND time_of_day > ?
		ORDER BY time_of_day
		LIMIT 1
	`)
	err = conn.GetContext(ctx, &next, query, userID, at)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return next, true, nil
}
