package models

import "strings"

// Order represents a ride request as returned by the dispatch backend.
// Every field except ID is optional: the backend omits fields freely and
// absent values must degrade to placeholders, never to an error.
type Order struct {
	ID                   int64   `json:"id"`
	PickupAddress        string  `json:"pickup_address,omitempty"`
	DestinationAddress   string  `json:"destination_address,omitempty"`
	Price                string  `json:"price,omitempty"`
	Distance             float64 `json:"distance,omitempty"`
	EstimatedTime        int     `json:"estimated_time,omitempty"`
	Status               string  `json:"status,omitempty"`
	OrderType            string  `json:"order_type,omitempty"`
	CreatedAt            string  `json:"created_at,omitempty"`
	PickupLatitude       float64 `json:"pickup_latitude,omitempty"`
	PickupLongitude      float64 `json:"pickup_longitude,omitempty"`
	DestinationLatitude  float64 `json:"destination_latitude,omitempty"`
	DestinationLongitude float64 `json:"destination_longitude,omitempty"`
	Notes                string  `json:"notes,omitempty"`
	PaymentMethod        string  `json:"payment_method,omitempty"`
	CustomerName         string  `json:"customer_name,omitempty"`
	CustomerPhone        string  `json:"customer_phone,omitempty"`
}

// Acceptable reports whether the order may be offered to the driver.
// Orders with no status yet, or explicitly marked new/pending, qualify.
func (o Order) Acceptable() bool {
	switch strings.ToLower(strings.TrimSpace(o.Status)) {
	case "", "new", "pending":
		return true
	default:
		return false
	}
}

// DisplayPickup returns the pickup address or a placeholder
func (o Order) DisplayPickup() string {
	if o.PickupAddress == "" {
		return "unknown pickup"
	}
	return o.PickupAddress
}

// DisplayDestination returns the destination address or a placeholder
func (o Order) DisplayDestination() string {
	if o.DestinationAddress == "" {
		return "unknown destination"
	}
	return o.DestinationAddress
}
