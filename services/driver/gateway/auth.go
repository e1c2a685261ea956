package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/taxihub/driverapp/internal/pkg/apierr"
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
	"github.com/taxihub/driverapp/services/driver"
)

// Login authenticates the driver against the status-check endpoint using
// Basic auth. On success the session is marked logged in, the driver ID is
// taken from the response (falling back to the configured test ID when the
// backend omits it) and credentials are persisted. Never returns an error:
// every failure flattens into the result message.
func (c *Client) Login(ctx context.Context, phone, password, baseURL string) models.LoginResult {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return models.LoginResult{Result: models.Fail("phone and password are required")}
	}

	c.session.Initialize(phone, password, baseURL)

	c.logger.Info("logging in",
		logger.String("phone", phone),
		logger.String("base_url", c.session.BaseURL()))

	envelope, err := c.transport.Request(ctx, http.MethodGet, endpointStatusCheck, nil, nil)
	if err != nil {
		c.logger.Error("login request failed", logger.Err(err))
		return models.LoginResult{Result: models.Fail("connection error: " + apierr.MessageOf(err))}
	}

	if !envelope.OK() {
		message := envelope.ErrorMessage()
		if message == "" {
			message = "login failed"
		}
		return models.LoginResult{Result: models.Fail(message)}
	}

	driverID := envelope.DriverID()
	if driverID == 0 {
		driverID = c.fallbackDriverID
	}
	c.session.SetLoggedIn(driverID)

	c.saveCredentials(ctx, phone, password)

	c.logger.Info("login successful",
		logger.String("phone", phone),
		logger.Int64("driver_id", driverID))

	return models.LoginResult{
		Result:   models.Ok(),
		DriverID: driverID,
		Phone:    phone,
		BaseURL:  c.session.BaseURL(),
	}
}

// AutoLogin restores persisted credentials and delegates to Login.
// Absent credentials are a normal condition, not an error.
func (c *Client) AutoLogin(ctx context.Context) models.LoginResult {
	phone, err := c.credentials.Get(ctx, driver.CredentialPhone)
	if err != nil {
		return models.LoginResult{Result: models.Fail("no saved credentials")}
	}
	password, err := c.credentials.Get(ctx, driver.CredentialPassword)
	if err != nil {
		return models.LoginResult{Result: models.Fail("no saved credentials")}
	}

	// The last-used backend URL travels with the credentials
	baseURL, err := c.credentials.Get(ctx, driver.CredentialAPIURL)
	if err != nil {
		baseURL = ""
	}

	c.logger.Info("auto-login with saved credentials")
	return c.Login(ctx, phone, password, baseURL)
}

// Logout notifies the backend best-effort, clears persisted credentials
// and resets the session. From the caller's perspective logout always
// succeeds once local state is cleared.
func (c *Client) Logout(ctx context.Context) models.Result {
	if c.session.LoggedIn() {
		if _, err := c.transport.RequestWithRetries(ctx, http.MethodPost, endpointLogout, nil, nil, 0); err != nil {
			c.logger.Warn("logout notification failed, clearing local state anyway",
				logger.Err(err))
		}
	}

	for _, key := range []string{driver.CredentialPhone, driver.CredentialPassword} {
		if err := c.credentials.Delete(ctx, key); err != nil {
			c.logger.Warn("failed to delete credential", logger.String("key", key), logger.Err(err))
		}
	}

	c.session.Reset()

	c.logger.Info("logged out")
	return models.Ok()
}

// ChangeBaseURL validates and normalizes the new backend URL, persists it
// and updates the session.
func (c *Client) ChangeBaseURL(ctx context.Context, newBaseURL string) models.Result {
	normalized := NormalizeBaseURL(newBaseURL)
	if normalized == "" {
		return models.Fail("base URL must not be empty")
	}

	if err := c.credentials.Set(ctx, driver.CredentialAPIURL, normalized); err != nil {
		c.logger.Warn("failed to persist base URL", logger.Err(err))
	}

	c.session.SetBaseURL(normalized)

	c.logger.Info("base URL changed", logger.String("base_url", normalized))
	return models.Ok()
}

func (c *Client) saveCredentials(ctx context.Context, phone, password string) {
	entries := map[string]string{
		driver.CredentialPhone:    phone,
		driver.CredentialPassword: password,
		driver.CredentialAPIURL:   c.session.BaseURL(),
	}
	for key, value := range entries {
		if err := c.credentials.Set(ctx, key, value); err != nil {
			c.logger.Warn("failed to persist credential",
				logger.String("key", key), logger.Err(err))
		}
	}
}
