package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownClosesStores(t *testing.T) {
	ts := newTestServer(t)

	require.NoError(t, ts.server.Shutdown(context.Background()))

	sqlDB, err := ts.server.db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
	assert.Error(t, ts.server.redis.Ping(context.Background()).Err())
}
