package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taxihub/driverapp/internal/pkg/config"
	"github.com/taxihub/driverapp/internal/pkg/database"
	"github.com/taxihub/driverapp/internal/pkg/health"
	httpclient "github.com/taxihub/driverapp/internal/pkg/http"
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/middleware"
	"github.com/taxihub/driverapp/internal/pkg/models"
	nrpkg "github.com/taxihub/driverapp/internal/pkg/newrelic"
	nsqpkg "github.com/taxihub/driverapp/internal/pkg/nsq"
	"github.com/taxihub/driverapp/services/driver"
	"github.com/taxihub/driverapp/services/driver/gateway"
	httpHandler "github.com/taxihub/driverapp/services/driver/handler/http"
	"github.com/taxihub/driverapp/services/driver/repository"
	"github.com/taxihub/driverapp/services/driver/usecase"
)

const appName = "driverd"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.New(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	credentials, cleanup := buildCredentialStore(configs, zapLogger)
	defer cleanup()

	transportConfig := httpclient.DefaultConfig()
	transportConfig.Timeout = time.Duration(configs.API.Timeout) * time.Second
	transportConfig.Retry.MaxRetries = configs.API.MaxRetries
	transportConfig.Retry.BaseDelay = time.Duration(configs.API.RetryBaseDelay) * time.Millisecond

	client := gateway.NewClient(gateway.Config{
		BaseURL:          configs.API.BaseURL,
		Transport:        transportConfig,
		FallbackDriverID: configs.API.FallbackDriverID,
	}, credentials, zapLogger)

	coordinator := usecase.NewCoordinator(client, newLogListener(zapLogger), configs.Poll, zapLogger)
	tracker := usecase.NewLocationTracker(client, configs.Location, zapLogger)

	if configs.Database.Host != "" {
		db, err := database.NewPostgresDB(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		defer db.Close()
		coordinator.SetOrderLog(repository.NewPostgresOrderLog(db))
	}

	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
		coordinator.SetPublisher(producer, configs.NSQ.Topic)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	login(ctx, client, zapLogger)
	if client.Session().LoggedIn() {
		coordinator.SetDriverID(client.Session().DriverID())
		coordinator.Start(ctx)
		defer coordinator.Stop()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(zapLogger))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	httpHandler.NewStatusHandler(client, coordinator, tracker).RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		zapLogger.Info("Starting status server", logger.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start status server", logger.Err(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Status server shutdown failed", logger.Err(err))
	}
}

// login authenticates from DRIVER_PHONE/DRIVER_PASSWORD when provided,
// otherwise from previously saved credentials. A failed login leaves the
// daemon running with only the status server; polling starts after a
// successful login.
func login(ctx context.Context, client *gateway.Client, zapLogger *logger.ZapLogger) {
	phone := config.GetEnv("DRIVER_PHONE", "")
	password := config.GetEnv("DRIVER_PASSWORD", "")

	var result models.LoginResult
	if phone != "" && password != "" {
		result = client.Login(ctx, phone, password, config.GetEnv("API_BASE_URL", ""))
	} else {
		result = client.AutoLogin(ctx)
	}

	if !result.Success {
		zapLogger.Warn("Login failed, polling disabled", logger.String("message", result.Message))
		return
	}
	zapLogger.Info("Logged in",
		logger.Int64("driver_id", result.DriverID),
		logger.String("base_url", result.BaseURL),
	)
}

// buildCredentialStore picks the store by configuration: Redis when a
// host is configured, otherwise an encrypted file when a passphrase is
// set, otherwise process memory.
func buildCredentialStore(configs *models.Config, zapLogger *logger.ZapLogger) (driver.CredentialStore, func()) {
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		deviceID, err := os.Hostname()
		if err != nil {
			deviceID = "unknown"
		}
		return repository.NewRedisCredentialStore(redisClient, deviceID), func() { redisClient.Close() }
	}

	if passphrase := config.GetEnv("CREDENTIALS_PASSPHRASE", ""); passphrase != "" {
		path := config.GetEnv("CREDENTIALS_FILE_PATH", defaultCredentialsPath())
		store, err := repository.NewFileCredentialStore(path, passphrase)
		if err != nil {
			zapLogger.Fatal("Failed to open credential file", logger.Err(err))
		}
		return store, func() {}
	}

	zapLogger.Warn("No credential store configured, credentials will not survive restarts")
	return repository.NewMemoryCredentialStore(), func() {}
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".driverapp", "credentials.enc")
}
