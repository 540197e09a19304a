package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config holds the audit document store settings.
type Config struct {
	URI      string
	Database string
	AppName  string
	// Timeout bounds connect, server selection and index creation.
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// Conn is an open client bound to the audit database.
type Conn struct {
	Client  *mongo.Client
	DB      *mongo.Database
	timeout time.Duration
}

// Connect dials MongoDB and pings the primary before returning.
func Connect(ctx context.Context, cfg Config) (*Conn, error) {
	timeout := cfg.timeout()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Conn{Client: client, DB: client.Database(cfg.Database), timeout: timeout}, nil
}

// Close disconnects the client, waiting at most the configured timeout.
func (c *Conn) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return c.Client.Disconnect(ctx)
}

// OpenAudit connects and prepares the audit collection. The caller owns the
// returned Conn.
func OpenAudit(ctx context.Context, cfg Config) (*AuditRepository, *Conn, error) {
	conn, err := Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	repo := NewAuditRepository(conn.DB)
	if err := ensureIndexes(ctx, repo.col, auditIndexes, conn.timeout); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return repo, conn, nil
}

func ensureIndexes(ctx context.Context, col *mongo.Collection, models []mongo.IndexModel, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := col.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("mongo indexes %s: %w", col.Name(), err)
	}
	return nil
}
