package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-console/internal/domain"
)

func TestInitializeDefaultsToPending(t *testing.T) {
	now := time.Now()
	shipment := domain.Shipment{Origin: "Chicago, IL"}

	require.NoError(t, Initialize(&shipment, nil, now))

	assert.Equal(t, domain.StatusPending, shipment.Status)
	require.Len(t, shipment.TrackingHistory, 1)
	assert.Equal(t, domain.StatusPending, shipment.TrackingHistory[0].Status)
	require.NotNil(t, shipment.TrackingHistory[0].Location)
	assert.Equal(t, "Chicago, IL", *shipment.TrackingHistory[0].Location)
}

func TestInitializeRejectsUnknownStatus(t *testing.T) {
	shipment := domain.Shipment{Status: "teleported"}

	err := Initialize(&shipment, nil, time.Now())
	require.Error(t, err)
	assert.Empty(t, shipment.TrackingHistory)
}

func TestTransitionAppendsEvent(t *testing.T) {
	now := time.Now()
	shipment := domain.Shipment{}
	require.NoError(t, Initialize(&shipment, nil, now))

	location := "Springfield, IL"
	require.NoError(t, Transition(&shipment, domain.StatusInTransit, &location, nil, now.Add(time.Hour)))

	assert.Equal(t, domain.StatusInTransit, shipment.Status)
	require.Len(t, shipment.TrackingHistory, 2)
	last := shipment.TrackingHistory[len(shipment.TrackingHistory)-1]
	assert.Equal(t, shipment.Status, last.Status)
	assert.Equal(t, &location, last.Location)
}

// The state machine is deliberately permissive: any status may follow any
// other, including edits after delivered or cancelled.
func TestTransitionAllowsAnyOrder(t *testing.T) {
	now := time.Now()
	shipment := domain.Shipment{}
	require.NoError(t, Initialize(&shipment, nil, now))

	sequence := []domain.ShipmentStatus{
		domain.StatusDelivered,
		domain.StatusPending,
		domain.StatusCancelled,
		domain.StatusException,
		domain.StatusOutForDelivery,
	}
	for i, status := range sequence {
		require.NoError(t, Transition(&shipment, status, nil, nil, now.Add(time.Duration(i)*time.Minute)))
	}

	assert.Equal(t, domain.StatusOutForDelivery, shipment.Status)
	assert.Len(t, shipment.TrackingHistory, len(sequence)+1)
}

// Audit completeness: the trail only ever grows, and its last entry always
// reflects the current status.
func TestAuditCompleteness(t *testing.T) {
	now := time.Now()
	shipment := domain.Shipment{}
	require.NoError(t, Initialize(&shipment, nil, now))

	previousLen := len(shipment.TrackingHistory)
	for i, status := range domain.ShipmentStatuses() {
		require.NoError(t, Transition(&shipment, status, nil, nil, now.Add(time.Duration(i)*time.Minute)))

		assert.Greater(t, len(shipment.TrackingHistory), previousLen)
		previousLen = len(shipment.TrackingHistory)

		last := shipment.TrackingHistory[len(shipment.TrackingHistory)-1]
		assert.Equal(t, shipment.Status, last.Status)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	now := time.Now()
	shipment := domain.Shipment{}
	require.NoError(t, Initialize(&shipment, nil, now))

	err := Transition(&shipment, "lost", nil, nil, now)
	require.Error(t, err)

	// A rejected write leaves both the status and the trail untouched.
	assert.Equal(t, domain.StatusPending, shipment.Status)
	assert.Len(t, shipment.TrackingHistory, 1)
}
