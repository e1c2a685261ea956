package usecase

import (
	"sync"

	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
)

// Reconciler states
const (
	StateIdle    = "idle"
	StateShowing = "showing"
)

// PoolEvents is the outcome of applying one pool snapshot: zero or one
// new-candidate event and zero or one vanished event, never both.
type PoolEvents struct {
	NewOrder   *models.Order
	VanishedID int64
	Vanished   bool
}

// PoolReconciler compares consecutive pool snapshots and decides which
// events the UI must see. It owns the snapshot and the single candidate:
// while a candidate is showing, new polls only check for its
// disappearance and never evaluate further candidates, so two competing
// order dialogs can never exist.
type PoolReconciler struct {
	mu        sync.Mutex
	candidate *models.Order
	snapshot  []models.Order
	logger    *logger.ZapLogger
}

// NewPoolReconciler creates an idle reconciler
func NewPoolReconciler(log *logger.ZapLogger) *PoolReconciler {
	return &PoolReconciler{
		snapshot: []models.Order{},
		logger:   log,
	}
}

// Apply replaces the snapshot wholesale with a freshly fetched pool and
// returns the events the transition produces. Re-applying an unchanged
// snapshot while its candidate is still showing is a no-op.
func (r *PoolReconciler) Apply(orders []models.Order) PoolEvents {
	r.mu.Lock()
	defer r.mu.Unlock()

	if orders == nil {
		orders = []models.Order{}
	}
	r.snapshot = orders

	if r.candidate != nil {
		// Only check for disappearance of the current candidate
		for _, order := range orders {
			if order.ID == r.candidate.ID {
				return PoolEvents{}
			}
		}

		vanishedID := r.candidate.ID
		r.candidate = nil
		r.logger.Info("candidate order no longer in pool",
			logger.Int64("order_id", vanishedID))
		return PoolEvents{VanishedID: vanishedID, Vanished: true}
	}

	// Idle: surface the first acceptable order in server order
	for _, order := range orders {
		if order.Acceptable() {
			candidate := order
			r.candidate = &candidate
			r.logger.Info("new candidate order",
				logger.Int64("order_id", candidate.ID),
				logger.String("status", candidate.Status))
			return PoolEvents{NewOrder: &candidate}
		}
	}

	return PoolEvents{}
}

// Resolve clears the candidate after the driver accepted or rejected it.
// Returns false when orderID is not the current candidate.
func (r *PoolReconciler) Resolve(orderID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.candidate == nil || r.candidate.ID != orderID {
		return false
	}
	r.candidate = nil
	return true
}

// Candidate returns a copy of the currently shown order, or nil
func (r *PoolReconciler) Candidate() *models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.candidate == nil {
		return nil
	}
	candidate := *r.candidate
	return &candidate
}

// Snapshot returns a copy of the latest pool snapshot
func (r *PoolReconciler) Snapshot() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]models.Order, len(r.snapshot))
	copy(snapshot, r.snapshot)
	return snapshot
}

// State returns the reconciler state for the status endpoint
func (r *PoolReconciler) State() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.candidate != nil {
		return StateShowing
	}
	return StateIdle
}
