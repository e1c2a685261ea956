package models

// Result is the normalized outcome every gateway operation returns.
// Success is always set; Message is a human-readable failure (or status)
// description. Gateway methods never return a Go error to their callers.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Ok returns a successful Result
func Ok() Result {
	return Result{Success: true}
}

// Fail returns a failed Result with the given message
func Fail(message string) Result {
	if message == "" {
		message = "unknown error"
	}
	return Result{Success: false, Message: message}
}

// LoginResult is the outcome of Login and AutoLogin
type LoginResult struct {
	Result
	DriverID int64  `json:"driver_id,omitempty"`
	Phone    string `json:"phone,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// OrdersResult carries a normalized order list. Orders is never nil on
// success: an empty or unrecognized payload normalizes to an empty list.
type OrdersResult struct {
	Result
	Orders []Order `json:"data"`
}

// OrderResult carries a single order payload
type OrderResult struct {
	Result
	Order *Order `json:"data,omitempty"`
}

// ProfileResult carries the driver profile
type ProfileResult struct {
	Result
	Profile *DriverProfile `json:"data,omitempty"`
}

// MessagesResult carries a normalized message list
type MessagesResult struct {
	Result
	Messages []Message `json:"data"`
}
