package usecase

import (
	"time"

	"github.com/taxihub/driverapp/internal/pkg/models"
)

// Listener receives UI-facing events from the polling coordinator. The
// coordinator delivers events from its own goroutines; implementations
// marshal onto their own scheduling context before touching UI state.
type Listener interface {
	// OnNewOrder presents a candidate order to the driver. At most one
	// candidate is active at a time.
	OnNewOrder(order models.Order)
	// OnOrderVanished notifies that the presented candidate disappeared
	// from the pool, e.g. another driver claimed it.
	OnOrderVanished(orderID int64)
	// OnCurrentOrders delivers the latest active-orders snapshot
	OnCurrentOrders(orders []models.Order)
	// OnMessages delivers the latest dispatcher messages
	OnMessages(messages []models.Message)
}

// Order lifecycle event types published to the fleet bus
const (
	EventOrderProposed  = "order.proposed"
	EventOrderVanished  = "order.vanished"
	EventOrderAccepted  = "order.accepted"
	EventOrderStarted   = "order.started"
	EventOrderCompleted = "order.completed"
	EventOrderCancelled = "order.cancelled"
)

// OrderEvent is the payload published for order lifecycle transitions
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int64     `json:"order_id"`
	DriverID  int64     `json:"driver_id"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher publishes lifecycle events to the fleet bus.
// The NSQ producer satisfies this; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(topic string, message interface{}) error
}
