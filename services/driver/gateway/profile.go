package gateway

import (
	"context"
	"net/http"

	"github.com/taxihub/driverapp/internal/pkg/apierr"
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
)

// GetDriverProfile fetches the driver's account. When the endpoint
// returns no usable payload a minimal profile is synthesized from the
// session identity so the profile view always has something to show.
func (c *Client) GetDriverProfile(ctx context.Context) models.ProfileResult {
	if result, ok := c.requireLogin(); !ok {
		return models.ProfileResult{Result: result}
	}

	envelope, err := c.transport.Request(ctx, http.MethodGet, endpointProfile, nil, nil)
	if err != nil {
		c.logger.Error("profile fetch failed", logger.Err(err))
		return models.ProfileResult{Result: models.Fail(apierr.MessageOf(err))}
	}

	if profile := envelope.Profile(); profile != nil {
		return models.ProfileResult{Result: models.Ok(), Profile: profile}
	}

	c.logger.Info("no profile payload, synthesizing from session")

	phone := c.session.Phone()
	return models.ProfileResult{
		Result: models.Ok(),
		Profile: &models.DriverProfile{
			ID:     c.session.DriverID(),
			Phone:  phone,
			Name:   "Driver " + phone,
			Status: models.DriverStatusOnline,
		},
	}
}
