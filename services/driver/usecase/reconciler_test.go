package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
)

func order(id int64, status string) models.Order {
	return models.Order{ID: id, Status: status}
}

func TestReconcilerSurfacesFirstAcceptableOrder(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())

	events := r.Apply([]models.Order{
		order(1, "completed"),
		order(2, "new"),
		order(3, "pending"),
	})

	require.NotNil(t, events.NewOrder)
	assert.Equal(t, int64(2), events.NewOrder.ID)
	assert.False(t, events.Vanished)
	assert.Equal(t, StateShowing, r.State())
}

func TestReconcilerEmptyPoolIsQuiet(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())

	events := r.Apply([]models.Order{})
	assert.Nil(t, events.NewOrder)
	assert.False(t, events.Vanished)
	assert.Equal(t, StateIdle, r.State())

	events = r.Apply(nil)
	assert.Nil(t, events.NewOrder)
	assert.NotNil(t, r.Snapshot())
}

func TestReconcilerNoAcceptableOrders(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())

	events := r.Apply([]models.Order{
		order(1, "accepted"),
		order(2, "in_progress"),
	})

	assert.Nil(t, events.NewOrder)
	assert.Equal(t, StateIdle, r.State())
	assert.Len(t, r.Snapshot(), 2)
}

func TestReconcilerIdempotentRepoll(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())
	pool := []models.Order{order(1, "new"), order(2, "new")}

	first := r.Apply(pool)
	require.NotNil(t, first.NewOrder)
	assert.Equal(t, int64(1), first.NewOrder.ID)

	// Same pool again while the candidate is showing: no new events
	for i := 0; i < 3; i++ {
		events := r.Apply(pool)
		assert.Nil(t, events.NewOrder)
		assert.False(t, events.Vanished)
	}

	candidate := r.Candidate()
	require.NotNil(t, candidate)
	assert.Equal(t, int64(1), candidate.ID)
}

func TestReconcilerIgnoresNewOrdersWhileShowing(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())

	first := r.Apply([]models.Order{order(1, "new")})
	require.NotNil(t, first.NewOrder)

	// A more attractive order arriving does not displace the candidate
	events := r.Apply([]models.Order{order(1, "new"), order(2, "new")})
	assert.Nil(t, events.NewOrder)
	assert.Equal(t, int64(1), r.Candidate().ID)
}

func TestReconcilerCandidateVanishes(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())

	require.NotNil(t, r.Apply([]models.Order{order(1, "new"), order(2, "new")}).NewOrder)

	// Candidate gone; vanish fires and no replacement in the same tick
	events := r.Apply([]models.Order{order(2, "new")})
	assert.True(t, events.Vanished)
	assert.Equal(t, int64(1), events.VanishedID)
	assert.Nil(t, events.NewOrder)
	assert.Equal(t, StateIdle, r.State())

	// The next tick promotes the survivor
	events = r.Apply([]models.Order{order(2, "new")})
	require.NotNil(t, events.NewOrder)
	assert.Equal(t, int64(2), events.NewOrder.ID)
}

func TestReconcilerResolve(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())

	require.NotNil(t, r.Apply([]models.Order{order(1, "new")}).NewOrder)

	assert.False(t, r.Resolve(99))
	assert.Equal(t, StateShowing, r.State())

	assert.True(t, r.Resolve(1))
	assert.Equal(t, StateIdle, r.State())
	assert.Nil(t, r.Candidate())

	assert.False(t, r.Resolve(1))
}

func TestReconcilerResolveThenNextPoll(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())
	pool := []models.Order{order(1, "new"), order(2, "new")}

	require.NotNil(t, r.Apply(pool).NewOrder)
	require.True(t, r.Resolve(1))

	// After accept, order 1 leaves the pool server-side; order 2 surfaces
	events := r.Apply([]models.Order{order(2, "new")})
	require.NotNil(t, events.NewOrder)
	assert.Equal(t, int64(2), events.NewOrder.ID)
	assert.False(t, events.Vanished)
}

func TestReconcilerCandidateIsACopy(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())
	require.NotNil(t, r.Apply([]models.Order{order(1, "new")}).NewOrder)

	candidate := r.Candidate()
	candidate.Status = "mutated"

	assert.Equal(t, "new", r.Candidate().Status)
}

func TestReconcilerStatusCaseInsensitive(t *testing.T) {
	r := NewPoolReconciler(logger.NewNop())

	events := r.Apply([]models.Order{order(1, "NEW")})
	require.NotNil(t, events.NewOrder)

	r2 := NewPoolReconciler(logger.NewNop())
	events = r2.Apply([]models.Order{order(1, "Pending")})
	require.NotNil(t, events.NewOrder)
}
