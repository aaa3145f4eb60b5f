package customer

import (
	"time"

	"transport-console/internal/domain"
)

// Request DTOs
type CreateCustomerRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=200"`
	ContactPerson string  `json:"contact_person" validate:"required,min=2,max=200"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,phone"`
	Address       string  `json:"address" validate:"required,min=5"`
	Notes         *string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateCustomerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2,max=200"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,min=2,max=200"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,phone"`
	Address       *string `json:"address" validate:"omitempty,min=5"`
	Notes         *string `json:"notes" validate:"omitempty,max=1000"`
}

type ListCustomersRequest struct {
	Search   string `form:"search"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type CustomerListResponse struct {
	Customers  []domain.Customer `json:"customers"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

func NewCustomer(req *CreateCustomerRequest, id string, now time.Time) domain.Customer {
	return domain.Customer{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
		CreatedAt:     now,
	}
}
