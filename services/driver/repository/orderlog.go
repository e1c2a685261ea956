package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taxihub/driverapp/internal/pkg/models"
)

// PostgresOrderLog writes order lifecycle events to the order_events
// table for fleet audit.
type PostgresOrderLog struct {
	db *sqlx.DB
}

// NewPostgresOrderLog creates an order log backed by db
func NewPostgresOrderLog(db *sqlx.DB) *PostgresOrderLog {
	return &PostgresOrderLog{db: db}
}

// RecordEvent inserts one lifecycle event row
func (l *PostgresOrderLog) RecordEvent(ctx context.Context, order models.Order, event string) error {
	query := `
		INSERT INTO order_events (order_id, event, order_status, pickup, destination, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := l.db.ExecContext(ctx, query,
		order.ID,
		event,
		order.Status,
		order.PickupAddress,
		order.DestinationAddress,
		order.Price,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record order event: %w", err)
	}
	return nil
}
