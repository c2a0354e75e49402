package sqldb

import (
	"context"
	"database/sql"
	"testing"

	"vocabot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestConn_AddScheduleEntry(t *testing.T) {
	conn, mock := newConnected(t)

	mock.ExpectExec("INSERT INTO schedule \\(user_id, time_of_day\\) VALUES \\(\\$1, \\$2\\) ON CONFLICT \\(user_id, time_of_day\\) DO NOTHING").
		WithArgs(int64(9), "08:00:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := conn.AddScheduleEntry(context.Background(), 9, domain.MustTimeOfDay("8:0:0"))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_DeleteScheduleEntry(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "existing entry", affected: 1},
		{name: "missing entry", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnected(t)

			mock.ExpectExec("DELETE FROM schedule WHERE user_id = \\$1 AND time_of_day = \\$2").
				WithArgs(int64(9), "12:00:00").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			removed, err := conn.DeleteScheduleEntry(context.Background(), 9, domain.MustTimeOfDay("12:00:00"))

			assert.NoError(t, err)
			assert.Equal(t, tt.affected, removed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConn_ListSchedule(t *testing.T) {
	conn, mock := newConnected(t)

	mock.ExpectQuery("SELECT time_of_day FROM schedule WHERE user_id = \\$1 ORDER BY time_of_day").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"time_of_day"}).AddRow("08:00:00").AddRow("12:00:00"))

	times, err := conn.ListSchedule(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, []domain.TimeOfDay{
		domain.MustTimeOfDay("08:00:00"),
		domain.MustTimeOfDay("12:00:00"),
	}, times)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_NextScheduleEntryAfter(t *testing.T) {
	query := "SELECT time_of_day FROM schedule WHERE user_id = \\$1 AND time_of_day > \\$2 ORDER BY time_of_day LIMIT 1"

	tests := []struct {
		name          string
		at            string
		mockRows      *sqlmock.Rows
		mockError     error
		expected      string
		expectedFound bool
	}{
		{
			name:          "next slot today",
			at:            "07:59:00",
			mockRows:      sqlmock.NewRows([]string{"time_of_day"}).AddRow("08:00:00"),
			expected:      "08:00:00",
			expectedFound: true,
		},
		{
			name:          "nothing left today",
			at:            "23:00:00",
			mockError:     sql.ErrNoRows,
			expected:      "00:00:00",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnected(t)

			q := mock.ExpectQuery(query).WithArgs(int64(9), tt.at)
			if tt.mockError != nil {
				q.WillReturnError(tt.mockError)
			} else {
				q.WillReturnRows(tt.mockRows)
			}

			next, found, err := conn.NextScheduleEntryAfter(context.Background(), 9, domain.MustTimeOfDay(tt.at))

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expected, next.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
