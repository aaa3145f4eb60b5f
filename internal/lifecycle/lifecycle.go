// Package lifecycle governs the status field of a shipment. The model is
// intentionally permissive: any status may follow any other, including
// edits after delivered or cancelled. The enforced invariant is audit
// completeness — every accepted status write appends a tracking event, and
// the trail is never truncated or reordered.
package lifecycle

import (
	"fmt"
	"time"

	"transport-console/internal/domain"
	appErrors "transport-console/pkg/errors"
)

// Initialize records the creation of a shipment as a transition into its
// initial status (default pending) and appends the first tracking event.
func Initialize(shipment *domain.Shipment, notes *string, now time.Time) error {
	if shipment.Status == "" {
		shipment.Status = domain.StatusPending
	}

	if !domain.IsKnownStatus(shipment.Status) {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown shipment status: %s", shipment.Status),
			appErrors.ErrInvalidStatus,
		)
	}

	shipment.TrackingHistory = append(shipment.TrackingHistory, domain.TrackingEvent{
		Status:    shipment.Status,
		Timestamp: now,
		Location:  optionalLocation(shipment.Origin),
		Notes:     notes,
	})

	return nil
}

// Transition sets a new status and appends the matching tracking event.
// Delivered and cancelled are terminal in practice but not enforced as
// terminal; further edits remain allowed.
func Transition(shipment *domain.Shipment, to domain.ShipmentStatus, location, notes *string, now time.Time) error {
	if !domain.IsKnownStatus(to) {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown shipment status: %s", to),
			appErrors.ErrInvalidStatus,
		)
	}

	shipment.Status = to
	shipment.UpdatedAt = now
	shipment.TrackingHistory = append(shipment.TrackingHistory, domain.TrackingEvent{
		Status:    to,
		Timestamp: now,
		Location:  location,
		Notes:     notes,
	})

	return nil
}

func optionalLocation(origin string) *string {
	if origin == "" {
		return nil
	}
	return &origin
}
