package customer

import (
	"transport-console/internal/domain"
	"transport-console/internal/idgen"
	"transport-console/internal/logger"
	"transport-console/internal/query"
	"transport-console/internal/repository"
	appErrors "transport-console/pkg/errors"
	"transport-console/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const defaultPageSize = 10

// Service implements customer use cases
type Service struct {
	repo *repository.Repository[domain.Customer]
}

func NewService(repo *repository.Repository[domain.Customer]) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCustomers(req *ListCustomersRequest) (*CustomerListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	page, size := normalizePage(req.Page, req.PageSize)

	customers := query.Search(s.repo.List(), req.Search)
	customers = query.Sort(customers, query.SortSpec{Key: req.SortBy, Descending: req.SortDesc})
	total := len(customers)

	return &CustomerListResponse{
		Customers:  query.Paginate(customers, page, size),
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: query.Pages(total, size),
	}, nil
}

func (s *Service) GetCustomer(id string) (*domain.Customer, error) {
	customer, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Service) CreateCustomer(req *CreateCustomerRequest) (*domain.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	req.Name = utils.SanitizeString(req.Name)
	req.ContactPerson = utils.SanitizeString(req.ContactPerson)
	req.Phone = utils.SanitizePhone(req.Phone)

	customer := s.repo.Create(NewCustomer(req, idgen.NewID(), time.Now()))

	logger.Info("Customer created",
		zap.String("customer_id", customer.ID),
		zap.String("event", "customer_created"),
	)

	return &customer, nil
}

func (s *Service) UpdateCustomer(id string, req *UpdateCustomerRequest) (*domain.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	customer, err := s.repo.Update(id, func(c *domain.Customer) error {
		if req.Name != nil {
			c.Name = utils.SanitizeString(*req.Name)
		}
		if req.ContactPerson != nil {
			c.ContactPerson = utils.SanitizeString(*req.ContactPerson)
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Phone != nil {
			c.Phone = utils.SanitizePhone(*req.Phone)
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.Notes != nil {
			c.Notes = req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Customer updated",
		zap.String("customer_id", customer.ID),
		zap.String("event", "customer_updated"),
	)

	return &customer, nil
}

// DeleteCustomer does not cascade: shipments referencing the customer keep
// the dangling id and display it as Unknown.
func (s *Service) DeleteCustomer(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("Customer deleted",
		zap.String("customer_id", id),
		zap.String("event", "customer_deleted"),
	)

	return nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	return page, size
}
