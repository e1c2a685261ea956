package models

import "encoding/json"

// Envelope is the single decode point for backend responses. The backend
// is inconsistent across endpoints and versions: the success flag is either
// a boolean `success` or a string `status`, list payloads live under `data`
// or `orders`, and the profile payload may appear under `data` or `driver`.
// Decoding once into this shape keeps the per-endpoint normalization a flat
// accessor instead of cascading type assertions at every call site.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Status  string          `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Orders  json.RawMessage `json:"orders,omitempty"`
	Driver  json.RawMessage `json:"driver,omitempty"`
}

// OK reports whether the backend marked the response successful under
// either convention.
func (e *Envelope) OK() bool {
	if e.Success != nil {
		return *e.Success
	}
	return e.Status == "success"
}

// ErrorMessage returns the server-provided failure text, preferring the
// explicit error field.
func (e *Envelope) ErrorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// OrderList extracts an order list from whichever field carries it.
// A missing, null, or malformed list degrades to an empty slice: "no
// orders yet" is the common case and is never a failure.
func (e *Envelope) OrderList() []Order {
	for _, raw := range []json.RawMessage{e.Data, e.Orders} {
		if len(raw) == 0 {
			continue
		}
		var orders []Order
		if err := json.Unmarshal(raw, &orders); err == nil && orders != nil {
			return orders
		}
	}
	return []Order{}
}

// SingleOrder extracts a single order payload from `data`, or nil
func (e *Envelope) SingleOrder() *Order {
	if len(e.Data) == 0 {
		return nil
	}
	var order Order
	if err := json.Unmarshal(e.Data, &order); err != nil || order.ID == 0 {
		return nil
	}
	return &order
}

// Profile extracts a driver profile from `data` or `driver`, or nil
func (e *Envelope) Profile() *DriverProfile {
	for _, raw := range []json.RawMessage{e.Data, e.Driver} {
		if len(raw) == 0 {
			continue
		}
		var profile DriverProfile
		if err := json.Unmarshal(raw, &profile); err == nil && profile.ID != 0 {
			return &profile
		}
	}
	return nil
}

// MessageList extracts a message list from `data`, degrading to empty
func (e *Envelope) MessageList() []Message {
	if len(e.Data) == 0 {
		return []Message{}
	}
	var messages []Message
	if err := json.Unmarshal(e.Data, &messages); err != nil || messages == nil {
		return []Message{}
	}
	return messages
}

// DriverID extracts the driver identifier from the login response, which
// may appear top-level or inside `data`. Returns 0 when absent.
func (e *Envelope) DriverID() int64 {
	if len(e.Data) == 0 {
		return 0
	}
	var payload struct {
		DriverID int64 `json:"driver_id"`
		ID       int64 `json:"id"`
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil {
		return 0
	}
	if payload.DriverID != 0 {
		return payload.DriverID
	}
	return payload.ID
}
