package driver

import (
	"time"

	"transport-console/internal/domain"
)

// Request DTOs
type CreateDriverRequest struct {
	Name              string  `json:"name" validate:"required,min=2,max=200"`
	LicenseNumber     string  `json:"license_number" validate:"required,min=4,max=40"`
	Phone             string  `json:"phone" validate:"required,phone"`
	Email             *string `json:"email" validate:"omitempty,email"`
	AssignedVehicleID *string `json:"assigned_vehicle_id" validate:"omitempty"`
	Status            *string `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	ExperienceYears   int     `json:"experience_years" validate:"min=0,max=60"`
}

type UpdateDriverRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=2,max=200"`
	LicenseNumber     *string `json:"license_number" validate:"omitempty,min=4,max=40"`
	Phone             *string `json:"phone" validate:"omitempty,phone"`
	Email             *string `json:"email" validate:"omitempty,email"`
	AssignedVehicleID *string `json:"assigned_vehicle_id" validate:"omitempty"`
	Status            *string `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	ExperienceYears   *int    `json:"experience_years" validate:"omitempty,min=0,max=60"`
}

type ListDriversRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type DriverListResponse struct {
	Drivers    []domain.Driver `json:"drivers"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

func NewDriver(req *CreateDriverRequest, id string, now time.Time) domain.Driver {
	status := domain.DriverActive
	if req.Status != nil {
		status = domain.DriverStatus(*req.Status)
	}

	return domain.Driver{
		ID:                id,
		Name:              req.Name,
		LicenseNumber:     req.LicenseNumber,
		Phone:             req.Phone,
		Email:             req.Email,
		AssignedVehicleID: req.AssignedVehicleID,
		Status:            status,
		ExperienceYears:   req.ExperienceYears,
		CreatedAt:         now,
	}
}
