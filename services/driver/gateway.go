package driver

import (
	"context"

	"github.com/taxihub/driverapp/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/taxihub/driverapp/services/driver DriverGW

// DriverGW is the dispatch backend gateway. Every operation returns a
// normalized result with Success always set; no method ever panics or
// returns a Go error to its caller. Authenticated operations fail fast
// with "not logged in" when no session is active, without touching the
// network.
type DriverGW interface {
	// Session
	Login(ctx context.Context, phone, password, baseURL string) models.LoginResult
	AutoLogin(ctx context.Context) models.LoginResult
	Logout(ctx context.Context) models.Result
	ChangeBaseURL(ctx context.Context, newBaseURL string) models.Result

	// Profile
	GetDriverProfile(ctx context.Context) models.ProfileResult

	// Orders
	CheckOrderPool(ctx context.Context) models.OrdersResult
	GetCurrentOrders(ctx context.Context) models.OrdersResult
	AcceptOrder(ctx context.Context, orderID int64) models.Result
	StartOrder(ctx context.Context, orderID int64) models.Result
	CompleteOrder(ctx context.Context, orderID int64) models.Result
	CancelOrder(ctx context.Context, orderID int64, reason string) models.Result
	GetOrderDetails(ctx context.Context, orderID int64) models.OrderResult
	GetOrderStorageDetails(ctx context.Context, orderID int64) models.OrderResult

	// Driver state
	UpdateDriverStatus(ctx context.Context, status string) models.Result
	UpdateLocation(ctx context.Context, location models.Location) models.Result

	// Messages
	GetMessages(ctx context.Context) models.MessagesResult
	MarkMessageRead(ctx context.Context, messageID int64) models.Result
	SendMessage(ctx context.Context, message models.OutgoingMessage) models.Result
}
