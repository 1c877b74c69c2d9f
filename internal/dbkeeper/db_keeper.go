package dbkeeper

import (
	"context"
	"fmt"
	"time"

	"github.com/drstein77/storefront/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Log interface {
	Info(string, ...zap.Field)
	Error(string, ...zap.Field)
}

// DBKeeper serves the storefront catalog from the items table.
type DBKeeper struct {
	pool *pgxpool.Pool
	log  Log
}

func NewDBKeeper(ctx context.Context, dsn func() string, log Log) (*DBKeeper, error) {
	addr := dsn()
	if addr == "" {
		return nil, fmt.Errorf("database dsn is empty")
	}

	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		log.Error("Unable to parse database DSN", zap.Error(err))
		return nil, fmt.Errorf("parse database dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		log.Error("Unable to connect to database", zap.Error(err))
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Info("Connected!")

	return &DBKeeper{
		pool: pool,
		log:  log,
	}, nil
}

// Load returns all catalog items in display order.
func (kp *DBKeeper) Load(ctx context.Context) ([]models.Item, error) {
	// Checking database connection
	if kp.pool == nil {
		return nil, fmt.Errorf("database connection pool is nil")
	}

	query := `
		SELECT url, alt, position, title, author, price, type
		FROM items
		ORDER BY sort_order, id
	`

	rows, err := kp.pool.Query(ctx, query)
	if err != nil {
		kp.log.Error("Failed to execute query", zap.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.URL,
			&item.Alt,
			&item.Position,
			&item.Title,
			&item.Author,
			&item.Price,
			&item.Type,
		)
		if err != nil {
			kp.log.Error("Failed to scan row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, item)
	}

	// Checking for errors during iteration
	if rows.Err() != nil {
		kp.log.Error("Error occurred during rows iteration", zap.Error(rows.Err()))
		return nil, fmt.Errorf("error during rows iteration: %w", rows.Err())
	}

	kp.log.Info("Successfully retrieved all items", zap.Int("count", len(items)))
	return items, nil
}

// InsertItems appends items after the existing ones, keeping their order.
func (kp *DBKeeper) InsertItems(ctx context.Context, items []models.Item) error {
	if kp.pool == nil {
		return fmt.Errorf("database connection pool is nil")
	}

	tx, err := kp.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var base int
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(sort_order), 0) FROM items`).Scan(&base); err != nil {
		return fmt.Errorf("failed to read sort order: %w", err)
	}

	stmt := `
		INSERT INTO items (url, alt, position, title, author, price, type, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for i, item := range items {
		if _, err := tx.Exec(ctx, stmt, item.URL, item.Alt, item.Position, item.Title, item.Author, item.Price, item.Type, base+i+1); err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (kp *DBKeeper) String() string {
	return "database"
}

func (kp *DBKeeper) Ping(ctx context.Context) bool {
	if kp.pool == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := kp.pool.Ping(ctx); err != nil {
		kp.log.Error("Database ping failed", zap.Error(err))
		return false
	}

	return true
}

func (kp *DBKeeper) Close() bool {
	if kp.pool != nil {
		kp.pool.Close()
		kp.log.Info("Database connection pool closed")
		return true
	}
	kp.log.Info("Attempted to close a nil database connection pool")
	return false
}
