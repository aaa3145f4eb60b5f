package domain

import "time"

// VehicleType enumerates the supported transport modes
type VehicleType string

const (
	VehicleSemiTrailer       VehicleType = "semi_trailer"
	VehicleBoxTruck          VehicleType = "box_truck"
	VehicleCargoVan          VehicleType = "cargo_van"
	VehicleFlatbed           VehicleType = "flatbed"
	VehicleRefrigeratedTruck VehicleType = "refrigerated_truck"
	VehicleContainerShip     VehicleType = "container_ship"
	VehicleCargoPlane        VehicleType = "cargo_plane"
	VehicleRailCar           VehicleType = "rail_car"
)

// VehicleStatus represents the operational status of a vehicle
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "available"
	VehicleInUse        VehicleStatus = "in_use"
	VehicleMaintenance  VehicleStatus = "maintenance"
	VehicleOutOfService VehicleStatus = "out_of_service"
)

// Vehicle represents a transport unit in the fleet
type Vehicle struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Type               VehicleType   `json:"type"`
	RegistrationNumber string        `json:"registration_number"`
	CapacityWeightKg   float64       `json:"capacity_weight_kg"`
	CapacityVolumeM3   float64       `json:"capacity_volume_m3"`
	Status             VehicleStatus `json:"status"`
	CurrentLocation    *string       `json:"current_location,omitempty"`
	FuelLevel          *int          `json:"fuel_level,omitempty"`
	NextMaintenanceAt  *time.Time    `json:"next_maintenance_at,omitempty"`
	// Weak reference mirroring Driver.AssignedVehicleID; the two are not
	// kept mutually consistent.
	AssignedDriverID *string   `json:"assigned_driver_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (v Vehicle) EntityID() string { return v.ID }
