package gateway

import (
	"context"
	"net/http"

	"github.com/taxihub/driverapp/internal/pkg/apierr"
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
)

// UpdateDriverStatus reports the driver's availability to the backend
func (c *Client) UpdateDriverStatus(ctx context.Context, status string) models.Result {
	if result, ok := c.requireLogin(); !ok {
		return result
	}

	if status == "" {
		return models.Fail("status must not be empty")
	}

	body := map[string]string{"status": status}
	envelope, err := c.transport.Request(ctx, http.MethodPost, endpointStatus, body, nil)
	if err != nil {
		c.logger.Error("status update failed",
			logger.String("status", status), logger.Err(err))
		return models.Fail(apierr.MessageOf(err))
	}

	if !envelope.OK() {
		message := envelope.ErrorMessage()
		if message == "" {
			message = "status update rejected"
		}
		return models.Fail(message)
	}

	c.logger.Info("driver status updated", logger.String("status", status))
	return models.Ok()
}

// UpdateLocation reports a GPS sample. Coordinates are validated locally
// before any network attempt, and the call is made with zero retries: it
// runs every few seconds, so a failed sample is logged and dropped rather
// than queued behind a retry schedule.
func (c *Client) UpdateLocation(ctx context.Context, location models.Location) models.Result {
	if result, ok := c.requireLogin(); !ok {
		return result
	}

	if !location.Valid() {
		return models.Fail("coordinates out of range")
	}

	envelope, err := c.transport.RequestWithRetries(ctx, http.MethodPost, endpointLocation, location, nil, 0)
	if err != nil {
		c.logger.Warn("location update dropped",
			logger.Float64("latitude", location.Latitude),
			logger.Float64("longitude", location.Longitude),
			logger.Err(err))
		return models.Fail(apierr.MessageOf(err))
	}

	if !envelope.OK() {
		message := envelope.ErrorMessage()
		if message == "" {
			message = "location update rejected"
		}
		return models.Fail(message)
	}

	return models.Ok()
}
