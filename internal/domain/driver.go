package domain

import "time"

// DriverStatus represents the working status of a driver
type DriverStatus string

const (
	DriverActive   DriverStatus = "active"
	DriverInactive DriverStatus = "inactive"
	DriverOnLeave  DriverStatus = "on_leave"
)

// Driver represents a fleet driver
type Driver struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	LicenseNumber string       `json:"license_number"`
	Phone         string       `json:"phone"`
	Email         *string      `json:"email,omitempty"`
	// Weak reference: may point to a Vehicle id, never kept in sync with
	// Vehicle.AssignedDriverID.
	AssignedVehicleID *string      `json:"assigned_vehicle_id,omitempty"`
	Status            DriverStatus `json:"status"`
	ExperienceYears   int          `json:"experience_years"`
	CreatedAt         time.Time    `json:"created_at"`
}

func (d Driver) EntityID() string { return d.ID }
