// Package gateway implements the dispatch backend API client. One method
// per backend capability; each wraps the resilient transport with
// endpoint-specific response normalization and always returns the
// normalized result shape instead of an error.
package gateway

import (
	"fmt"

	httpclient "github.com/taxihub/driverapp/internal/pkg/http"
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
	"github.com/taxihub/driverapp/services/driver"
)

// Backend endpoint paths
const (
	endpointStatusCheck  = "/api/driver2/status/check"
	endpointProfile      = "/api/driver2/profile"
	endpointPool         = "/api/driver2/%d/pool"
	endpointOrders       = "/api/driver2/orders/current"
	endpointOrderAccept  = "/api/driver2/orders/%d/accept"
	endpointOrderStart   = "/api/driver2/orders/%d/start"
	endpointOrderDone    = "/api/driver2/orders/%d/complete"
	endpointOrderCancel  = "/api/driver2/orders/%d/cancel"
	endpointOrderDetails = "/api/driver2/orders/%d"
	endpointOrderStorage = "/api/driver2/order_storage/%d"
	endpointStatus       = "/api/driver2/status"
	endpointLocation     = "/api/driver2/location"
	endpointLogout       = "/api/driver2/logout"
	endpointMessages     = "/api/driver2/messages"
	endpointMessageRead  = "/api/driver2/messages/%d/read"
)

const notLoggedInMessage = "not logged in"

// Client is the dispatch backend gateway implementation
type Client struct {
	session          *Session
	transport        *httpclient.Transport
	credentials      driver.CredentialStore
	fallbackDriverID int64
	logger           *logger.ZapLogger
}

// Config holds gateway configuration
type Config struct {
	BaseURL          string
	Transport        httpclient.Config
	FallbackDriverID int64
}

// NewClient creates a gateway bound to a credential store
func NewClient(config Config, credentials driver.CredentialStore, log *logger.ZapLogger) *Client {
	session := NewSession(config.BaseURL)
	return &Client{
		session:          session,
		transport:        httpclient.NewTransport(session, config.Transport, log),
		credentials:      credentials,
		fallbackDriverID: config.FallbackDriverID,
		logger:           log,
	}
}

// Session exposes the session's read-only view for the status endpoint
// and the polling coordinator.
func (c *Client) Session() *Session {
	return c.session
}

// Transport exposes the transport for breaker statistics
func (c *Client) Transport() *httpclient.Transport {
	return c.transport
}

// requireLogin returns a failed result when no session is active.
// Authenticated operations call it before touching the network.
func (c *Client) requireLogin() (models.Result, bool) {
	if !c.session.LoggedIn() {
		c.logger.Warn("authenticated operation attempted without login")
		return models.Fail(notLoggedInMessage), false
	}
	return models.Ok(), true
}

func orderEndpoint(format string, orderID int64) string {
	return fmt.Sprintf(format, orderID)
}
