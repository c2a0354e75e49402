package service

import (
	"context"
	"testing"

	"vocabot/internal/domain"
	"vocabot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_AddTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{name: "valid time", input: "23:59:59", expected: "23:59:59"},
		{name: "non padded time", input: "12:5:00", expected: "12:05:00"},
		{name: "hour out of range", input: "24:00:00", expectedErr: domain.ErrInvalidTimeFormat},
		{name: "garbage", input: "noon", expectedErr: domain.ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMemoryStore()
			testutil.Seed(t, store, 1, nil)
			service := NewScheduleService(store, testutil.NewTestLogger())
			ctx := context.Background()

			at, err := service.AddTime(ctx, 1, tt.input)

			times, listErr := service.ListSchedule(ctx, 1)
			require.NoError(t, listErr)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, times)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, at.String())
			assert.Equal(t, []domain.TimeOfDay{at}, times)
		})
	}
}

func TestScheduleService_AddTime_Duplicate(t *testing.T) {
	store := testutil.NewMemoryStore()
	testutil.Seed(t, store, 1, nil)
	service := NewScheduleService(store, testutil.NewTestLogger())
	ctx := context.Background()

	_, err := service.AddTime(ctx, 1, "08:00:00")
	require.NoError(t, err)
	_, err = service.AddTime(ctx, 1, "8:00:00")
	require.NoError(t, err)

	times, err := service.ListSchedule(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, times, 1)
}

func TestScheduleService_DeleteTime(t *testing.T) {
	store := testutil.NewMemoryStore()
	testutil.Seed(t, store, 1, nil, "08:00:00", "12:00:00")
	service := NewScheduleService(store, testutil.NewTestLogger())
	ctx := context.Background()

	at, removed, err := service.DeleteTime(ctx, 1, "08:00:00")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "08:00:00", at.String())

	_, removed, err = service.DeleteTime(ctx, 1, "08:00:00")
	require.NoError(t, err)
	assert.False(t, removed)

	_, _, err = service.DeleteTime(ctx, 1, "25:00:00")
	assert.ErrorIs(t, err, domain.ErrInvalidTimeFormat)

	times, err := service.ListSchedule(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeOfDay{domain.MustTimeOfDay("12:00:00")}, times)
}

func TestScheduleService_AddTime_StoreError(t *testing.T) {
	store, conn := newMockStore()
	conn.On("AddScheduleEntry", mock.Anything, int64(1), domain.MustTimeOfDay("08:00:00")).Return(errDB)
	service := NewScheduleService(store, testutil.NewTestLogger())

	_, err := service.AddTime(context.Background(), 1, "08:00:00")

	assert.ErrorIs(t, err, errDB)
	conn.AssertExpectations(t)
}
