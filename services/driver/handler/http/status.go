// Package http exposes the local status and control surface of the
// driver daemon over echo.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taxihub/driverapp/internal/pkg/circuitbreaker"
	"github.com/taxihub/driverapp/internal/pkg/models"
	"github.com/taxihub/driverapp/services/driver/gateway"
	"github.com/taxihub/driverapp/services/driver/usecase"
)

// StatusHandler reports the daemon's session, reconciler and transport
// state for local inspection.
type StatusHandler struct {
	client      *gateway.Client
	coordinator *usecase.Coordinator
	tracker     *usecase.LocationTracker
}

// NewStatusHandler creates a status handler
func NewStatusHandler(client *gateway.Client, coordinator *usecase.Coordinator, tracker *usecase.LocationTracker) *StatusHandler {
	return &StatusHandler{
		client:      client,
		coordinator: coordinator,
		tracker:     tracker,
	}
}

// RegisterRoutes registers the status endpoints on e
func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/status", h.GetStatus)
	e.GET("/status/pool", h.GetPool)
	e.POST("/status/driver", h.SetDriverStatus)
	e.POST("/status/location", h.ReportLocation)
}

type sessionStatus struct {
	LoggedIn bool   `json:"logged_in"`
	DriverID int64  `json:"driver_id,omitempty"`
	Phone    string `json:"phone,omitempty"`
	BaseURL  string `json:"base_url"`
}

type poolStatus struct {
	State     string         `json:"state"`
	Candidate *models.Order  `json:"candidate,omitempty"`
	Snapshot  []models.Order `json:"snapshot"`
}

type daemonStatus struct {
	Session      sessionStatus        `json:"session"`
	DriverStatus string               `json:"driver_status"`
	Pool         poolStatus           `json:"pool"`
	Breaker      circuitbreaker.Stats `json:"breaker"`
}

// GetStatus returns a full snapshot of the daemon state
func (h *StatusHandler) GetStatus(c echo.Context) error {
	session := h.client.Session()

	return c.JSON(http.StatusOK, daemonStatus{
		Session: sessionStatus{
			LoggedIn: session.LoggedIn(),
			DriverID: session.DriverID(),
			Phone:    session.Phone(),
			BaseURL:  session.BaseURL(),
		},
		DriverStatus: h.coordinator.DriverStatus(),
		Pool:         h.poolStatus(),
		Breaker:      h.client.Transport().BreakerStats(),
	})
}

// GetPool returns the reconciler state only
func (h *StatusHandler) GetPool(c echo.Context) error {
	return c.JSON(http.StatusOK, h.poolStatus())
}

type setDriverStatusRequest struct {
	Status string `json:"status"`
}

// SetDriverStatus changes the driver's availability
func (h *StatusHandler) SetDriverStatus(c echo.Context) error {
	var req setDriverStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	if !models.ValidDriverStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, models.Fail("unknown driver status: "+req.Status))
	}

	result := h.coordinator.SetDriverStatus(c.Request().Context(), req.Status)
	if !result.Success {
		return c.JSON(http.StatusBadGateway, result)
	}
	return c.JSON(http.StatusOK, result)
}

type reportLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type reportLocationResponse struct {
	Sent bool `json:"sent"`
}

// ReportLocation feeds a GPS sample to the location tracker. The tracker
// decides whether the sample reaches the backend; a suppressed sample is
// still a successful request.
func (h *StatusHandler) ReportLocation(c echo.Context) error {
	var req reportLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	location := models.Location{Latitude: req.Latitude, Longitude: req.Longitude}
	if !location.Valid() {
		return c.JSON(http.StatusBadRequest, models.Fail("coordinates out of range"))
	}

	sent := h.tracker.Report(c.Request().Context(), location)
	return c.JSON(http.StatusOK, reportLocationResponse{Sent: sent})
}

func (h *StatusHandler) poolStatus() poolStatus {
	reconciler := h.coordinator.Reconciler()
	return poolStatus{
		State:     reconciler.State(),
		Candidate: reconciler.Candidate(),
		Snapshot:  reconciler.Snapshot(),
	}
}
