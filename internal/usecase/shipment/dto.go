package shipment

import (
	"time"

	"transport-console/internal/domain"
)

// Request DTOs
type ShipmentItemRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	WeightKg   float64 `json:"weight_kg" validate:"min=0"`
	Dimensions *string `json:"dimensions" validate:"omitempty,max=100"`
	IsFragile  bool    `json:"is_fragile"`
}

type CreateShipmentRequest struct {
	Origin              string                `json:"origin" validate:"required,min=2,max=200"`
	Destination         string                `json:"destination" validate:"required,min=2,max=200"`
	CustomerID          string                `json:"customer_id" validate:"required"`
	VehicleID           *string               `json:"vehicle_id" validate:"omitempty"`
	DriverID            *string               `json:"driver_id" validate:"omitempty"`
	Status              *string               `json:"status" validate:"omitempty,oneof=pending info_received in_transit out_for_delivery delivered delayed cancelled exception"`
	Priority            *string               `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedPickupAt   time.Time             `json:"estimated_pickup_at" validate:"required"`
	EstimatedDeliveryAt time.Time             `json:"estimated_delivery_at" validate:"required"`
	Items               []ShipmentItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes               *string               `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateShipmentRequest struct {
	Origin              *string               `json:"origin" validate:"omitempty,min=2,max=200"`
	Destination         *string               `json:"destination" validate:"omitempty,min=2,max=200"`
	CustomerID          *string               `json:"customer_id" validate:"omitempty"`
	VehicleID           *string               `json:"vehicle_id" validate:"omitempty"`
	DriverID            *string               `json:"driver_id" validate:"omitempty"`
	Status              *string               `json:"status" validate:"omitempty,oneof=pending info_received in_transit out_for_delivery delivered delayed cancelled exception"`
	StatusLocation      *string               `json:"status_location" validate:"omitempty,max=200"`
	StatusNotes         *string               `json:"status_notes" validate:"omitempty,max=500"`
	Priority            *string               `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedPickupAt   *time.Time            `json:"estimated_pickup_at" validate:"omitempty"`
	EstimatedDeliveryAt *time.Time            `json:"estimated_delivery_at" validate:"omitempty"`
	ActualPickupAt      *time.Time            `json:"actual_pickup_at" validate:"omitempty"`
	ActualDeliveryAt    *time.Time            `json:"actual_delivery_at" validate:"omitempty"`
	Items               []ShipmentItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Notes               *string               `json:"notes" validate:"omitempty,max=1000"`
	ProofOfDelivery     *string               `json:"proof_of_delivery" validate:"omitempty"`
}

type UpdateStatusRequest struct {
	Status   string  `json:"status" validate:"required,oneof=pending info_received in_transit out_for_delivery delivered delayed cancelled exception"`
	Location *string `json:"location" validate:"omitempty,max=200"`
	Notes    *string `json:"notes" validate:"omitempty,max=500"`
}

type ListShipmentsRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type ShipmentResponse struct {
	domain.Shipment

	// Weak references resolved lazily at read time. A dangling reference
	// renders as Unknown, an absent one as Unassigned.
	CustomerName string `json:"customer_name"`
	VehicleName  string `json:"vehicle_name"`
	DriverName   string `json:"driver_name"`
}

type ShipmentListResponse struct {
	Shipments  []ShipmentResponse `json:"shipments"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

type ImportResultResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type RestoreResultResponse struct {
	Shipments int `json:"shipments"`
	Vehicles  int `json:"vehicles"`
	Drivers   int `json:"drivers"`
	Customers int `json:"customers"`
}

type StatisticsResponse struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	Active        int            `json:"active"`
	TotalWeightKg float64        `json:"total_weight_kg"`
}

func itemsFromRequest(items []ShipmentItemRequest) []domain.ShipmentItem {
	out := make([]domain.ShipmentItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ShipmentItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			WeightKg:   item.WeightKg,
			Dimensions: item.Dimensions,
			IsFragile:  item.IsFragile,
		})
	}
	return out
}
