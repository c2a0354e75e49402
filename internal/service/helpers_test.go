package service

import (
	"errors"

	"vocabot/internal/testutil"

	"github.com/stretchr/testify/mock"
)

var errDB = errors.New("db error")

// newMockStore returns a store whose handles are conn, with the
// lifecycle calls already expected.
func newMockStore() (*testutil.MockStore, *testutil.MockConn) {
	conn := new(testutil.MockConn)
	conn.On("Connect", mock.Anything).Return(nil)
	conn.On("Disconnect").Return(nil)

	store := new(testutil.MockStore)
	store.On("Conn").Return(conn)
	return store, conn
}
