package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/prisonadmin/internal/config"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/dberrors"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// Fixed pool bounds. pgxpool opens connections one at a time on demand,
// so the pool grows by an increment of one up to MaxConns.
const (
	MinConns         = 1
	MaxConns         = 3
	MaxConnIdleTime  = 60 * time.Second
	AcquireTimeout   = 60 * time.Second
	DrainGracePeriod = 10 * time.Second

	connectTimeout = 10 * time.Second
)

// Querier is the statement surface shared by pooled connections and transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConnFn is a function that runs on a borrowed connection
type ConnFn func(ctx context.Context, q Querier) error

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// PoolSnapshot is a point-in-time view of the pool counters.
type PoolSnapshot struct {
	AcquiredConns     int32
	IdleConns         int32
	TotalConns        int32
	MaxConns          int32
	AcquireCount      int64
	EmptyAcquireCount int64
	AcquireDuration   time.Duration
}

// Manager owns the connection pool for the lifetime of the process.
// It is created once at startup and injected into every component that needs the database.
type Manager struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// NewManager creates the PostgreSQL connection pool and verifies it with a ping.
func NewManager(ctx context.Context, cfg *config.Config) (*Manager, error) {
	return Connect(ctx, cfg.GetPostgresConnectionString())
}

// Connect creates a manager for a postgres:// connection string.
func Connect(ctx context.Context, connString string) (*Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MinConns = MinConns
	poolConfig.MaxConns = MaxConns
	poolConfig.MaxConnIdleTime = MaxConnIdleTime

	// Drop connections that died while idle instead of handing them to a request
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create connection pool: %w", apperrors.ErrConnection, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: failed to establish database connection: %w", apperrors.ErrConnection, err)
	}

	logger.Info().
		Int32("minConns", poolConfig.MinConns).
		Int32("maxConns", poolConfig.MaxConns).
		Dur("idleTimeout", poolConfig.MaxConnIdleTime).
		Msg("Connection pool started")

	return &Manager{pool: pool, acquireTimeout: AcquireTimeout}, nil
}

// Acquire borrows a connection. The caller must Release it.
// Waiting longer than the acquire timeout yields apperrors.ErrPoolExhausted.
func (m *Manager) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, m.acquireTimeout)
	defer cancel()

	conn, err := m.pool.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			logger.Warn().Dur("waited", m.acquireTimeout).Msg("No pooled connection became available")
			return nil, fmt.Errorf("%w: %w", apperrors.ErrPoolExhausted, err)
		}
		return nil, fmt.Errorf("%w: failed to acquire connection: %w", apperrors.ErrConnection, err)
	}
	return conn, nil
}

// WithConnection lends a connection to fn and returns it to the pool on every exit path.
func (m *Manager) WithConnection(ctx context.Context, fn ConnFn) error {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(ctx, conn)
}

// WithTransaction runs a function within a transaction on a single borrowed connection.
func (m *Manager) WithTransaction(ctx context.Context, fn TransactionFn) error {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", dberrors.Classify(err))
	}

	// Rollback on panic
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", dberrors.Classify(err))
	}

	return nil
}

// RunSteps applies a step batch inside one transaction.
// The transaction commits only when no fatal step failed.
func (m *Manager) RunSteps(ctx context.Context, steps []Step) (BatchReport, error) {
	var report BatchReport
	err := m.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var applyErr error
		report, applyErr = ApplySteps(ctx, tx, steps)
		return applyErr
	})
	return report, err
}

// Ping checks that a connection can be borrowed and used.
func (m *Manager) Ping(ctx context.Context) error {
	return m.WithConnection(ctx, func(ctx context.Context, q Querier) error {
		var one int
		if err := q.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
			return dberrors.Classify(err)
		}
		return nil
	})
}

// Snapshot reports the current pool counters.
func (m *Manager) Snapshot() PoolSnapshot {
	stat := m.pool.Stat()
	return PoolSnapshot{
		AcquiredConns:     stat.AcquiredConns(),
		IdleConns:         stat.IdleConns(),
		TotalConns:        stat.TotalConns(),
		MaxConns:          stat.MaxConns(),
		AcquireCount:      stat.AcquireCount(),
		EmptyAcquireCount: stat.EmptyAcquireCount(),
		AcquireDuration:   stat.AcquireDuration(),
	}
}

// Close drains the pool. Borrowed connections get up to grace to be returned;
// an error is reported when the drain does not finish in time.
func (m *Manager) Close(grace time.Duration) error {
	if m == nil || m.pool == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		m.pool.Close()
		close(done)
	}()

	select {
	case <-done:
		logger.Info().Msg("Pool closed")
		return nil
	case <-time.After(grace):
		return fmt.Errorf("connection pool did not drain within %s: %d connections still borrowed",
			grace, m.pool.Stat().AcquiredConns())
	}
}
