package service

import (
	"context"
	"testing"

	"vocabot/internal/domain"
	"vocabot/internal/state"
	"vocabot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	store := testutil.NewMemoryStore()
	st := state.New()
	service := NewUserService(store, st, testutil.NewTestLogger())
	ctx := context.Background()

	assert.False(t, service.IsRegistered(1))

	created, err := service.Register(ctx, 1)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, service.IsRegistered(1))

	mode, ok := st.Modes.Get(1)
	assert.True(t, ok)
	assert.Equal(t, domain.ModeAwaitingAnswer, mode)

	// a second /start changes nothing
	st.Modes.Set(1, domain.ModeAwaitingUpload)
	created, err = service.Register(ctx, 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, st.Users.Len())

	mode, _ = st.Modes.Get(1)
	assert.Equal(t, domain.ModeAwaitingUpload, mode)
}

func TestUserService_Register_Error(t *testing.T) {
	store, conn := newMockStore()
	conn.On("Register", mock.Anything, int64(1)).Return(false, errDB)

	st := state.New()
	service := NewUserService(store, st, testutil.NewTestLogger())

	created, err := service.Register(context.Background(), 1)

	assert.ErrorIs(t, err, errDB)
	assert.False(t, created)
	assert.False(t, service.IsRegistered(1))
	conn.AssertExpectations(t)
}

func TestUserService_LoadRegistered(t *testing.T) {
	tests := []struct {
		name          string
		mockReturn    []int64
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{name: "users loaded", mockReturn: []int64{10, 20}, expectedCount: 2},
		{name: "no users", mockReturn: []int64{}, expectedCount: 0},
		{name: "database error", mockError: errDB, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, conn := newMockStore()
			conn.On("ListUserIDs", mock.Anything).Return(tt.mockReturn, tt.mockError)

			st := state.New()
			service := NewUserService(store, st, testutil.NewTestLogger())

			count, err := service.LoadRegistered(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
			for _, id := range tt.mockReturn {
				assert.True(t, service.IsRegistered(id))
				mode, ok := st.Modes.Get(id)
				assert.True(t, ok)
				assert.Equal(t, domain.ModeAwaitingAnswer, mode)
			}
			conn.AssertExpectations(t)
		})
	}
}
