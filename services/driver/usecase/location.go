package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/mmcloughlin/geohash"

	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
	"github.com/taxihub/driverapp/services/driver"
)

// LocationTracker throttles position reports. Updates are fire and
// forget: a failed send is logged and dropped, never retried, and the
// stale report is superseded by the next one.
type LocationTracker struct {
	gw     driver.DriverGW
	config models.LocationConfig
	logger *logger.ZapLogger

	mu          sync.Mutex
	lastGeohash string
	lastSent    time.Time
}

// NewLocationTracker creates a tracker with the configured update
// interval and geohash precision.
func NewLocationTracker(gw driver.DriverGW, config models.LocationConfig, log *logger.ZapLogger) *LocationTracker {
	if config.UpdateInterval <= 0 {
		config.UpdateInterval = 5
	}
	if config.GeohashPrecision == 0 {
		config.GeohashPrecision = 7
	}
	return &LocationTracker{
		gw:     gw,
		config: config,
		logger: log,
	}
}

// Report sends the position to the backend unless the driver has not
// moved out of the previous geohash cell or the update interval has not
// elapsed yet. Returns true when a send was attempted.
func (t *LocationTracker) Report(ctx context.Context, location models.Location) bool {
	if !location.Valid() {
		t.logger.Warn("dropping location with coordinates out of range",
			logger.Float64("latitude", location.Latitude),
			logger.Float64("longitude", location.Longitude))
		return false
	}

	cell := geohash.EncodeWithPrecision(location.Latitude, location.Longitude, t.config.GeohashPrecision)

	t.mu.Lock()
	if cell == t.lastGeohash {
		t.mu.Unlock()
		t.logger.Debug("location unchanged, skipping update", logger.String("geohash", cell))
		return false
	}
	if since := time.Since(t.lastSent); since < time.Duration(t.config.UpdateInterval)*time.Second {
		t.mu.Unlock()
		t.logger.Debug("location update throttled", logger.Duration("since_last", since))
		return false
	}
	t.lastGeohash = cell
	t.lastSent = time.Now()
	t.mu.Unlock()

	t.gw.UpdateLocation(ctx, location)
	return true
}

// Reset clears the suppression state so the next report always sends,
// e.g. after a login or a status change.
func (t *LocationTracker) Reset() {
	t.mu.Lock()
	t.lastGeohash = ""
	t.lastSent = time.Time{}
	t.mu.Unlock()
}
