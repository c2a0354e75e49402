// Package dispatcher polls user schedules and sends quizzes when a
// scheduled time of day has passed.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"vocabot/internal/domain"
	"vocabot/internal/repository"

	"go.uber.org/zap"
)

// Notifier receives the users due in a tick together with a freshly drawn
// word for each of them.
type Notifier interface {
	Notify(ctx context.Context, userIDs []int64, words map[int64]domain.WordPair) error
}

// cursor is the next schedule slot tracked for a user
type cursor struct {
	next domain.TimeOfDay
	// pending is false when no slot is left today
	pending bool
	// scheduled is false when the user has no schedule at all
	scheduled bool
}

// Dispatcher detects schedule slot crossings between polling ticks
type Dispatcher struct {
	store    repository.Store
	notifier Notifier
	interval time.Duration
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger

	cursors  map[int64]cursor
	lastTick time.Time
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithLocation sets the timezone schedule times are interpreted in
func WithLocation(loc *time.Location) Option {
	return func(d *Dispatcher) { d.location = loc }
}

func New(store repository.Store, notifier Notifier, interval time.Duration, logger *zap.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:    store,
		notifier: notifier,
		interval: interval,
		location: time.Local,
		now:      time.Now,
		logger:   logger,
		cursors:  make(map[int64]cursor),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run polls until ctx is cancelled. The first tick only seeds cursors.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("Dispatcher started", zap.Duration("interval", d.interval))

	d.Tick(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Dispatcher stopped")
			return
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick runs a single polling pass and returns the users found due.
// It never panics and never returns an error: failures are logged.
func (d *Dispatcher) Tick(ctx context.Context) (due []int64) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Dispatcher tick panicked", zap.Any("panic", r))
			due = nil
		}
	}()

	now := d.now().In(d.location)

	err := repository.WithConn(ctx, d.store, func(conn repository.Conn) error {
		var err error
		due, err = d.poll(ctx, conn, now)
		if err != nil || len(due) == 0 {
			return err
		}

		words := d.drawWords(ctx, conn, due)
		if len(words) == 0 {
			return nil
		}
		return d.notifier.Notify(ctx, due, words)
	})
	if err != nil {
		d.logger.Error("Dispatcher tick failed", zap.Error(err))
	}

	return due
}

// poll updates every cursor and returns the users whose tracked slot passed
func (d *Dispatcher) poll(ctx context.Context, conn repository.Conn, now time.Time) ([]int64, error) {
	userIDs, err := conn.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	seeding := d.lastTick.IsZero()
	rollover := !seeding && !sameDay(d.lastTick, now)
	d.lastTick = now
	tod := domain.TimeOfDayOf(now)

	var due []int64
	for _, userID := range userIDs {
		prev, known := d.cursors[userID]
		if !known && !seeding {
			// brand new user, start tracking on the next tick
			d.cursors[userID] = cursor{}
			continue
		}

		cur, first, err := d.observe(ctx, conn, userID, tod, rollover && prev.scheduled)
		if err != nil {
			d.logger.Error("Failed to check schedule",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			continue
		}
		d.cursors[userID] = cur

		if seeding {
			continue
		}
		if crossed(prev, first, tod, rollover) {
			due = append(due, userID)
		}
	}

	if rollover {
		d.logger.Info("New schedule day started", zap.Time("now", now))
	}

	return due, nil
}

// observe reads the user's next slot after now. first is the earliest slot of
// the day and is only filled in when the schedule had to be listed.
func (d *Dispatcher) observe(ctx context.Context, conn repository.Conn, userID int64, now domain.TimeOfDay, needFirst bool) (cur cursor, first *domain.TimeOfDay, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	next, pending, err := conn.NextScheduleEntryAfter(ctx, userID, now)
	if err != nil {
		return cursor{}, nil, fmt.Errorf("next schedule entry: %w", err)
	}
	cur = cursor{next: next, pending: pending, scheduled: pending}

	if pending && !needFirst {
		return cur, nil, nil
	}

	slots, err := conn.ListSchedule(ctx, userID)
	if err != nil {
		return cursor{}, nil, fmt.Errorf("list schedule: %w", err)
	}
	if len(slots) > 0 {
		cur.scheduled = true
		first = &slots[0]
	}
	return cur, first, nil
}

// crossed decides whether a slot passed between the previous tick and now.
// A tracked slot counts only once the clock reached it, so editing a
// schedule never fires by itself. On the first tick of a day a user is due
// if yesterday's slot was still pending or today's first slot already passed.
// A schedule that was empty on the previous tick never fires.
func crossed(prev cursor, first *domain.TimeOfDay, now domain.TimeOfDay, rollover bool) bool {
	if !prev.scheduled {
		return false
	}
	if rollover {
		return prev.pending || (first != nil && *first <= now)
	}
	return prev.pending && prev.next <= now
}

// drawWords picks a random word for every due user. Users without words
// or with failing lookups are left out.
func (d *Dispatcher) drawWords(ctx context.Context, conn repository.Conn, userIDs []int64) map[int64]domain.WordPair {
	words := make(map[int64]domain.WordPair, len(userIDs))
	for _, userID := range userIDs {
		word, ok, err := conn.RandomWord(ctx, userID)
		if err != nil {
			d.logger.Error("Failed to draw word",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			continue
		}
		if !ok {
			d.logger.Debug("User is due but has no words", zap.Int64("user_id", userID))
			continue
		}
		words[userID] = word
	}
	return words
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
