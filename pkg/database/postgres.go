package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Pool errors surfaced by Acquire.
var (
	// ErrPoolClosed is returned by Acquire after Close has been called.
	ErrPoolClosed = errors.New("database: pool is closed")
	// ErrPoolExhausted is returned when no connection becomes available
	// within the configured acquire timeout.
	ErrPoolExhausted = errors.New("database: pool exhausted")
)

// Config holds database and pool configuration.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Pool bounds. Zero values fall back to the defaults below.
	MaxOpenConns    int
	MinIdleConns    int
	ConnMaxLifetime time.Duration
	AcquireTimeout  time.Duration
}

// Pool defaults applied when the corresponding Config field is zero.
const (
	DefaultMaxOpenConns    = 25
	DefaultMinIdleConns    = 5
	DefaultConnMaxLifetime = 5 * time.Minute
	DefaultAcquireTimeout  = 5 * time.Second
)

func (c *Config) applyDefaults() {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = DefaultMaxOpenConns
	}
	if c.MinIdleConns <= 0 {
		c.MinIdleConns = DefaultMinIdleConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	if c.AcquireTimeout <= 0 {
		c.AcquireTimeout = DefaultAcquireTimeout
	}
}

// Manager owns the bounded connection pool every repository draws from.
// One Manager is constructed per process and injected where needed; tests
// build isolated instances of their own.
type Manager struct {
	sqlDB          *sql.DB
	gormDB         *gorm.DB
	acquireTimeout time.Duration

	mu     sync.RWMutex
	closed bool
}

// Open connects to PostgreSQL, configures the pool and verifies the
// connection. An unreachable backend or bad credentials fail here, at
// startup, rather than on the first repository call.
func Open(cfg Config) (*Manager, error) {
	cfg.applyDefaults()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	configurePool(sqlDB, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AcquireTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Manager{sqlDB: sqlDB, gormDB: gormDB, acquireTimeout: cfg.AcquireTimeout}, nil
}

// OpenWithDialector builds a Manager on an arbitrary GORM dialector. Tests
// use it with an in-memory SQLite database; production code goes through Open.
func OpenWithDialector(dialector gorm.Dialector, cfg Config) (*Manager, error) {
	cfg.applyDefaults()

	gormDB, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	configurePool(sqlDB, cfg)

	return &Manager{sqlDB: sqlDB, gormDB: gormDB, acquireTimeout: cfg.AcquireTimeout}, nil
}

func configurePool(db *sql.DB, cfg Config) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MinIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

func gormConfig() *gorm.Config {
	// TranslateError lets repositories map duplicate-key and foreign-key
	// failures without inspecting driver error codes.
	return &gorm.Config{TranslateError: true}
}

// DB returns the GORM handle bound to the managed pool. Repositories hold
// this handle; every statement they run checks a connection out of the pool
// and returns it before the call completes, on every exit path.
func (m *Manager) DB() *gorm.DB {
	return m.gormDB
}

// SQLDB exposes the underlying pool for stats collection.
func (m *Manager) SQLDB() *sql.DB {
	return m.sqlDB
}

// Acquire checks a connection out of the pool explicitly. When the pool is
// at capacity the call blocks up to the configured acquire timeout, then
// fails with ErrPoolExhausted. The caller releases with conn.Close(),
// normally via defer.
func (m *Manager) Acquire(ctx context.Context) (*sql.Conn, error) {
	m.mu.RLock()
	closed := m.closed
	m.mu.RUnlock()
	if closed {
		return nil, ErrPoolClosed
	}

	acquireCtx, cancel := context.WithTimeout(ctx, m.acquireTimeout)
	defer cancel()

	conn, err := m.sqlDB.Conn(acquireCtx)
	if err != nil {
		// Exhaustion is only reported when the acquire timeout fired; a
		// caller context that ran out first keeps its own error.
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrPoolExhausted
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("failed to acquire connection: %w", ctxErr)
		}
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

// HealthCheck acquires a connection, pings it and releases it.
func (m *Manager) HealthCheck(ctx context.Context) bool {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return false
	}
	defer conn.Close()
	return conn.PingContext(ctx) == nil
}

// Close tears the pool down. In-flight checkouts keep their connections
// until they release them; new Acquire calls fail fast with ErrPoolClosed.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.mu.Unlock()

	return m.sqlDB.Close()
}
