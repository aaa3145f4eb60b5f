package vehicle

import (
	"time"

	"transport-console/internal/domain"
)

// Request DTOs
type CreateVehicleRequest struct {
	Name               string     `json:"name" validate:"required,min=2,max=200"`
	Type               string     `json:"type" validate:"required,oneof=semi_trailer box_truck cargo_van flatbed refrigerated_truck container_ship cargo_plane rail_car"`
	RegistrationNumber string     `json:"registration_number" validate:"required,min=2,max=40"`
	CapacityWeightKg   float64    `json:"capacity_weight_kg" validate:"required,gt=0"`
	CapacityVolumeM3   float64    `json:"capacity_volume_m3" validate:"required,gt=0"`
	Status             *string    `json:"status" validate:"omitempty,oneof=available in_use maintenance out_of_service"`
	CurrentLocation    *string    `json:"current_location" validate:"omitempty,max=200"`
	FuelLevel          *int       `json:"fuel_level" validate:"omitempty,min=0,max=100"`
	NextMaintenanceAt  *time.Time `json:"next_maintenance_at" validate:"omitempty"`
	AssignedDriverID   *string    `json:"assigned_driver_id" validate:"omitempty"`
}

type UpdateVehicleRequest struct {
	Name               *string    `json:"name" validate:"omitempty,min=2,max=200"`
	Type               *string    `json:"type" validate:"omitempty,oneof=semi_trailer box_truck cargo_van flatbed refrigerated_truck container_ship cargo_plane rail_car"`
	RegistrationNumber *string    `json:"registration_number" validate:"omitempty,min=2,max=40"`
	CapacityWeightKg   *float64   `json:"capacity_weight_kg" validate:"omitempty,gt=0"`
	CapacityVolumeM3   *float64   `json:"capacity_volume_m3" validate:"omitempty,gt=0"`
	Status             *string    `json:"status" validate:"omitempty,oneof=available in_use maintenance out_of_service"`
	CurrentLocation    *string    `json:"current_location" validate:"omitempty,max=200"`
	FuelLevel          *int       `json:"fuel_level" validate:"omitempty,min=0,max=100"`
	NextMaintenanceAt  *time.Time `json:"next_maintenance_at" validate:"omitempty"`
	AssignedDriverID   *string    `json:"assigned_driver_id" validate:"omitempty"`
}

type ListVehiclesRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type VehicleListResponse struct {
	Vehicles   []domain.Vehicle `json:"vehicles"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func NewVehicle(req *CreateVehicleRequest, id string, now time.Time) domain.Vehicle {
	status := domain.VehicleAvailable
	if req.Status != nil {
		status = domain.VehicleStatus(*req.Status)
	}

	return domain.Vehicle{
		ID:                 id,
		Name:               req.Name,
		Type:               domain.VehicleType(req.Type),
		RegistrationNumber: req.RegistrationNumber,
		CapacityWeightKg:   req.CapacityWeightKg,
		CapacityVolumeM3:   req.CapacityVolumeM3,
		Status:             status,
		CurrentLocation:    req.CurrentLocation,
		FuelLevel:          req.FuelLevel,
		NextMaintenanceAt:  req.NextMaintenanceAt,
		AssignedDriverID:   req.AssignedDriverID,
		CreatedAt:          now,
	}
}
