// Package usecase contains the polling coordinator: the component that
// periodically reconciles the unclaimed order pool, the active-orders
// list and dispatcher messages against the backend, and surfaces each
// outcome to the UI collaborator exactly once.
package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
	"github.com/taxihub/driverapp/services/driver"
)

// Coordinator owns the polling loops. Each endpoint is polled on its own
// goroutine so one slow fetch never delays the others, while ticks for
// the same endpoint are serialized: a tick that fires mid-fetch is
// dropped by the ticker, so a changing pool is never read concurrently
// from the same polling source.
type Coordinator struct {
	gw         driver.DriverGW
	reconciler *PoolReconciler
	listener   Listener
	config     models.PollConfig
	logger     *logger.ZapLogger

	// optional collaborators, nil-safe
	orderLog  driver.OrderLog
	publisher EventPublisher
	topic     string

	driverID     atomic.Int64
	driverStatus atomic.Value // string

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewCoordinator creates a stopped coordinator
func NewCoordinator(gw driver.DriverGW, listener Listener, config models.PollConfig, log *logger.ZapLogger) *Coordinator {
	if config.PoolInterval <= 0 {
		config.PoolInterval = 10
	}
	if config.OrdersInterval <= 0 {
		config.OrdersInterval = 5
	}
	if config.MessagesInterval <= 0 {
		config.MessagesInterval = 30
	}

	c := &Coordinator{
		gw:         gw,
		reconciler: NewPoolReconciler(log),
		listener:   listener,
		config:     config,
		logger:     log,
	}
	c.driverStatus.Store(models.DriverStatusOnline)
	return c
}

// SetOrderLog attaches the order event log; call before Start
func (c *Coordinator) SetOrderLog(orderLog driver.OrderLog) {
	c.orderLog = orderLog
}

// SetPublisher attaches the fleet event publisher; call before Start
func (c *Coordinator) SetPublisher(publisher EventPublisher, topic string) {
	c.publisher = publisher
	c.topic = topic
}

// SetDriverID records the authenticated driver's identity for event
// payloads; call after a successful login.
func (c *Coordinator) SetDriverID(driverID int64) {
	c.driverID.Store(driverID)
}

// Reconciler exposes reconciler state for the status endpoint
func (c *Coordinator) Reconciler() *PoolReconciler {
	return c.reconciler
}

// Start launches the polling loops. Calling Start on a running
// coordinator is a no-op.
func (c *Coordinator) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}

	ctx, c.cancel = context.WithCancel(ctx)
	c.running = true

	c.wg.Add(3)
	go c.loop(ctx, time.Duration(c.config.PoolInterval)*time.Second, c.pollPool)
	go c.loop(ctx, time.Duration(c.config.OrdersInterval)*time.Second, c.pollOrders)
	go c.loop(ctx, time.Duration(c.config.MessagesInterval)*time.Second, c.pollMessages)

	c.logger.Info("polling coordinator started",
		logger.Int("pool_interval", c.config.PoolInterval),
		logger.Int("orders_interval", c.config.OrdersInterval),
		logger.Int("messages_interval", c.config.MessagesInterval))
}

// Stop cancels future ticks and waits for in-flight fetches to finish.
// Results of fetches in flight at cancellation time are discarded.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	cancel := c.cancel
	c.mu.Unlock()

	cancel()
	c.wg.Wait()

	c.logger.Info("polling coordinator stopped")
}

// loop runs fn on every tick until ctx is cancelled. fn runs on the loop
// goroutine, so two fetches for the same endpoint never overlap; a tick
// that fires while fn runs is dropped by the ticker.
func (c *Coordinator) loop(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// pollPool reconciles the unclaimed order pool. While the driver is
// offline the poll is a no-op: no network call, snapshot untouched.
func (c *Coordinator) pollPool(ctx context.Context) {
	if c.DriverStatus() == models.DriverStatusOffline {
		c.logger.Debug("driver offline, skipping pool check")
		return
	}

	result := c.gw.CheckOrderPool(ctx)
	if ctx.Err() != nil {
		return // cancelled mid-fetch, discard
	}
	if !result.Success {
		c.logger.Warn("pool check failed", logger.String("message", result.Message))
		return
	}

	events := c.reconciler.Apply(result.Orders)

	if events.Vanished {
		if c.listener != nil {
			c.listener.OnOrderVanished(events.VanishedID)
		}
		c.publishEvent(EventOrderVanished, events.VanishedID)
	}

	if events.NewOrder != nil {
		if c.listener != nil {
			c.listener.OnNewOrder(*events.NewOrder)
		}
		c.publishEvent(EventOrderProposed, events.NewOrder.ID)
	}
}

// pollOrders refreshes the active-orders list. Active rides must finish
// even while the driver is marked offline, so no offline short-circuit.
func (c *Coordinator) pollOrders(ctx context.Context) {
	result := c.gw.GetCurrentOrders(ctx)
	if ctx.Err() != nil {
		return
	}
	if !result.Success {
		c.logger.Warn("current orders fetch failed", logger.String("message", result.Message))
		return
	}

	if c.listener != nil {
		c.listener.OnCurrentOrders(result.Orders)
	}
}

func (c *Coordinator) pollMessages(ctx context.Context) {
	result := c.gw.GetMessages(ctx)
	if ctx.Err() != nil {
		return
	}
	if !result.Success {
		c.logger.Warn("messages fetch failed", logger.String("message", result.Message))
		return
	}

	if c.listener != nil {
		c.listener.OnMessages(result.Messages)
	}
}

// AcceptCandidate accepts the currently presented order. Order lists are
// not mutated locally; the next poll re-fetches the authoritative state.
func (c *Coordinator) AcceptCandidate(ctx context.Context) models.Result {
	candidate := c.reconciler.Candidate()
	if candidate == nil {
		return models.Fail("no candidate order")
	}

	result := c.gw.AcceptOrder(ctx, candidate.ID)
	if !result.Success {
		return result
	}

	c.reconciler.Resolve(candidate.ID)
	c.recordOrderEvent(ctx, *candidate, EventOrderAccepted)
	c.publishEvent(EventOrderAccepted, candidate.ID)

	return result
}

// RejectCandidate dismisses the currently presented order locally. The
// backend is not notified; the order stays in the pool for other drivers.
func (c *Coordinator) RejectCandidate() models.Result {
	candidate := c.reconciler.Candidate()
	if candidate == nil {
		return models.Fail("no candidate order")
	}

	c.reconciler.Resolve(candidate.ID)
	c.logger.Info("candidate order rejected", logger.Int64("order_id", candidate.ID))

	return models.Ok()
}

// StartOrder marks an accepted order as started
func (c *Coordinator) StartOrder(ctx context.Context, orderID int64) models.Result {
	result := c.gw.StartOrder(ctx, orderID)
	if result.Success {
		c.recordOrderEvent(ctx, models.Order{ID: orderID}, EventOrderStarted)
		c.publishEvent(EventOrderStarted, orderID)
	}
	return result
}

// CompleteOrder marks a started order as completed
func (c *Coordinator) CompleteOrder(ctx context.Context, orderID int64) models.Result {
	result := c.gw.CompleteOrder(ctx, orderID)
	if result.Success {
		c.recordOrderEvent(ctx, models.Order{ID: orderID}, EventOrderCompleted)
		c.publishEvent(EventOrderCompleted, orderID)
	}
	return result
}

// CancelOrder cancels an order with a reason
func (c *Coordinator) CancelOrder(ctx context.Context, orderID int64, reason string) models.Result {
	result := c.gw.CancelOrder(ctx, orderID, reason)
	if result.Success {
		c.recordOrderEvent(ctx, models.Order{ID: orderID}, EventOrderCancelled)
		c.publishEvent(EventOrderCancelled, orderID)
	}
	return result
}

// SetDriverStatus reports availability to the backend and, on success,
// updates the local status consulted by the pool loop.
func (c *Coordinator) SetDriverStatus(ctx context.Context, status string) models.Result {
	if !models.ValidDriverStatus(status) {
		return models.Fail("unknown driver status: " + status)
	}

	result := c.gw.UpdateDriverStatus(ctx, status)
	if result.Success {
		c.driverStatus.Store(status)
		c.logger.Info("driver status changed", logger.String("status", status))
	}
	return result
}

// DriverStatus returns the last successfully reported availability
func (c *Coordinator) DriverStatus() string {
	return c.driverStatus.Load().(string)
}

func (c *Coordinator) recordOrderEvent(ctx context.Context, order models.Order, event string) {
	if c.orderLog == nil {
		return
	}
	if err := c.orderLog.RecordEvent(ctx, order, event); err != nil {
		c.logger.Warn("failed to record order event",
			logger.Int64("order_id", order.ID),
			logger.String("event", event),
			logger.Err(err))
	}
}

func (c *Coordinator) publishEvent(eventType string, orderID int64) {
	if c.publisher == nil {
		return
	}
	event := OrderEvent{
		Type:      eventType,
		OrderID:   orderID,
		DriverID:  c.driverID.Load(),
		Timestamp: time.Now(),
	}
	if err := c.publisher.Publish(c.topic, event); err != nil {
		c.logger.Warn("failed to publish order event",
			logger.String("type", eventType),
			logger.Int64("order_id", orderID),
			logger.Err(err))
	}
}
