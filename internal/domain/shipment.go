package domain

import "time"

// ShipmentStatus represents the lifecycle status of a shipment
type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "pending"
	StatusInfoReceived   ShipmentStatus = "info_received"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
	StatusDelayed        ShipmentStatus = "delayed"
	StatusCancelled      ShipmentStatus = "cancelled"
	StatusException      ShipmentStatus = "exception"
)

// ShipmentStatuses lists every known status in display order.
func ShipmentStatuses() []ShipmentStatus {
	return []ShipmentStatus{
		StatusPending,
		StatusInfoReceived,
		StatusInTransit,
		StatusOutForDelivery,
		StatusDelivered,
		StatusDelayed,
		StatusCancelled,
		StatusException,
	}
}

// IsKnownStatus reports whether s is one of the enumerated statuses.
func IsKnownStatus(s ShipmentStatus) bool {
	for _, known := range ShipmentStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// ShipmentPriority represents the urgency of a shipment
type ShipmentPriority string

const (
	PriorityLow    ShipmentPriority = "low"
	PriorityMedium ShipmentPriority = "medium"
	PriorityHigh   ShipmentPriority = "high"
	PriorityUrgent ShipmentPriority = "urgent"
)

// IsKnownPriority reports whether p is one of the enumerated priorities.
func IsKnownPriority(p ShipmentPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ShipmentItem is a line item owned by exactly one shipment.
type ShipmentItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	WeightKg   float64 `json:"weight_kg"`
	Dimensions *string `json:"dimensions,omitempty"`
	IsFragile  bool    `json:"is_fragile"`
}

// TrackingEvent is an immutable audit record of a shipment's status at a
// point in time. Once appended it is never mutated or removed.
type TrackingEvent struct {
	Status    ShipmentStatus `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Location  *string        `json:"location,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
}

// Shipment represents a shipping order entity in the domain
type Shipment struct {
	ID             string `json:"id"`
	ShipmentNumber string `json:"shipment_number"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// References. CustomerID must resolve to an existing customer at
	// creation time; vehicle and driver assignment are optional. All three
	// are weak references and may dangle after a delete elsewhere.
	CustomerID string  `json:"customer_id"`
	VehicleID  *string `json:"vehicle_id,omitempty"`
	DriverID   *string `json:"driver_id,omitempty"`

	Status   ShipmentStatus   `json:"status"`
	Priority ShipmentPriority `json:"priority"`

	EstimatedPickupAt   time.Time  `json:"estimated_pickup_at"`
	EstimatedDeliveryAt time.Time  `json:"estimated_delivery_at"`
	ActualPickupAt      *time.Time `json:"actual_pickup_at,omitempty"`
	ActualDeliveryAt    *time.Time `json:"actual_delivery_at,omitempty"`

	Items []ShipmentItem `json:"items"`

	// Derived: always Σ item.WeightKg × item.Quantity, recomputed on every
	// save, never hand-edited.
	TotalWeightKg float64 `json:"total_weight_kg"`

	Notes           *string `json:"notes,omitempty"`
	ProofOfDelivery *string `json:"proof_of_delivery,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Append-only; the last element always reflects the current status.
	TrackingHistory []TrackingEvent `json:"tracking_history"`
}

func (s Shipment) EntityID() string { return s.ID }

// RecomputeTotalWeight restores the derived total weight invariant.
func (s *Shipment) RecomputeTotalWeight() {
	total := 0.0
	for _, item := range s.Items {
		total += item.WeightKg * float64(item.Quantity)
	}
	s.TotalWeightKg = total
}
