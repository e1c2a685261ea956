package main

import (
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
)

// logListener surfaces polling outcomes in the daemon log. A UI build
// would replace this with its own listener.
type logListener struct {
	logger *logger.ZapLogger
}

func newLogListener(log *logger.ZapLogger) *logListener {
	return &logListener{logger: log}
}

func (l *logListener) OnNewOrder(order models.Order) {
	l.logger.Info("New order available",
		logger.Int64("order_id", order.ID),
		logger.String("pickup", order.DisplayPickup()),
		logger.String("destination", order.DisplayDestination()),
		logger.String("price", order.Price),
	)
}

func (l *logListener) OnOrderVanished(orderID int64) {
	l.logger.Info("Order no longer available", logger.Int64("order_id", orderID))
}

func (l *logListener) OnCurrentOrders(orders []models.Order) {
	l.logger.Debug("Current orders refreshed", logger.Int("count", len(orders)))
}

func (l *logListener) OnMessages(messages []models.Message) {
	l.logger.Debug("Messages refreshed", logger.Int("count", len(messages)))
}
