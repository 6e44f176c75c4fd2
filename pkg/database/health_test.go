package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/reportline/reportline/test/database"
)

func TestHealthReportsPoolStats(t *testing.T) {
	client := testdb.NewTestClient(t)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Positive(t, status.OpenConns)
	assert.GreaterOrEqual(t, status.PingMillis, int64(0))
}
