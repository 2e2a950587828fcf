//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

func connectForTest(t *testing.T) *Manager {
	t.Helper()

	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	m, err := Connect(context.Background(), url)
	require.NoError(t, err)
	return m
}

func TestAcquireTimesOutWhenPoolIsExhausted(t *testing.T) {
	m := connectForTest(t)
	defer func() { _ = m.Close(DrainGracePeriod) }()
	m.acquireTimeout = 200 * time.Millisecond

	ctx := context.Background()
	var held []*pgxpool.Conn
	for i := 0; i < MaxConns; i++ {
		conn, err := m.Acquire(ctx)
		require.NoError(t, err)
		held = append(held, conn)
	}

	_, err := m.Acquire(ctx)
	assert.ErrorIs(t, err, apperrors.ErrPoolExhausted)
	assert.ErrorIs(t, err, apperrors.ErrConnection)

	for _, conn := range held {
		conn.Release()
	}

	require.NoError(t, m.Ping(ctx))
	assert.Equal(t, int32(0), m.Snapshot().AcquiredConns)
}

func TestWithConnectionReleasesOnError(t *testing.T) {
	m := connectForTest(t)
	defer func() { _ = m.Close(DrainGracePeriod) }()

	ctx := context.Background()
	for i := 0; i < MaxConns+2; i++ {
		err := m.WithConnection(ctx, func(ctx context.Context, q Querier) error {
			_, err := q.Exec(ctx, "SELECT * FROM table_that_does_not_exist")
			return err
		})
		require.Error(t, err)
	}
	assert.Equal(t, int32(0), m.Snapshot().AcquiredConns)
}

func TestRunStepsRollsBackOnFatalStep(t *testing.T) {
	m := connectForTest(t)
	defer func() { _ = m.Close(DrainGracePeriod) }()

	ctx := context.Background()
	_, err := m.RunSteps(ctx, []Step{
		{Name: "drop", SQL: "DROP TABLE IF EXISTS batch_probe", Policy: FatalOnFailure},
	})
	require.NoError(t, err)

	report, err := m.RunSteps(ctx, []Step{
		{Name: "drop missing", SQL: "DROP TABLE batch_probe", Policy: IgnorableOnFailure},
		{Name: "create", SQL: "CREATE TABLE batch_probe (id INT)", Policy: FatalOnFailure},
		{Name: "broken", SQL: "INSERT INTO batch_probe VALUES ('x')", Policy: FatalOnFailure},
	})
	require.Error(t, err)
	assert.Len(t, report.Ignored, 1)

	var exists bool
	err = m.WithConnection(ctx, func(ctx context.Context, q Querier) error {
		return q.QueryRow(ctx, "SELECT to_regclass('batch_probe') IS NOT NULL").Scan(&exists)
	})
	require.NoError(t, err)
	assert.False(t, exists, "create must be rolled back with the failed batch")
}

func TestCloseDrainsIdlePool(t *testing.T) {
	m := connectForTest(t)
	require.NoError(t, m.Ping(context.Background()))
	assert.NoError(t, m.Close(time.Second))
}
