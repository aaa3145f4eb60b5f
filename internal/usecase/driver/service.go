package driver

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

// Service implements driver use cases
type Service struct {
	repo *repository.Repository[domain.Driver]
}

func NewService(repo *repository.Repository[domain.Driver]) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDrivers(req *ListDriversRequest) (*DriverListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	page, size := normalizePage(req.Page, req.PageSize)

	drivers := query.Search(s.repo.List(), req.Search)
	drivers = query.FilterStatus(drivers, req.Status, func(d domain.Driver) string {
		return string(d.Status)
	})
	drivers = query.Sort(drivers, query.SortSpec{Key: req.SortBy, Descending: req.SortDesc})
	total := len(drivers)

	return &DriverListResponse{
		Drivers:    query.Paginate(drivers, page, size),
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: query.Pages(total, size),
	}, nil
}

func (s *Service) GetDriver(id string) (*domain.Driver, error) {
	driver, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *Service) CreateDriver(req *CreateDriverRequest) (*domain.Driver, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	req.Name = utils.SanitizeString(req.Name)
	req.Phone = utils.SanitizePhone(req.Phone)

	driver := s.repo.Create(NewDriver(req, idgen.NewID(), time.Now()))

	logger.Info("Driver created",
		zap.String("driver_id", driver.ID),
		zap.String("event", "driver_created"),
	)

	return &driver, nil
}

func (s *Service) UpdateDriver(id string, req *UpdateDriverRequest) (*domain.Driver, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	driver, err := s.repo.Update(id, func(d *domain.Driver) error {
		if req.Name != nil {
			d.Name = utils.SanitizeString(*req.Name)
		}
		if req.LicenseNumber != nil {
			d.LicenseNumber = *req.LicenseNumber
		}
		if req.Phone != nil {
			d.Phone = utils.SanitizePhone(*req.Phone)
		}
		if req.Email != nil {
			d.Email = req.Email
		}
		if req.AssignedVehicleID != nil {
			// Empty string unassigns; anything else is stored as a weak
			// reference without a consistency check against the vehicle's
			// own assignment.
			if *req.AssignedVehicleID == "" {
				d.AssignedVehicleID = nil
			} else {
				d.AssignedVehicleID = req.AssignedVehicleID
			}
		}
		if req.Status != nil {
			d.Status = domain.DriverStatus(*req.Status)
		}
		if req.ExperienceYears != nil {
			d.ExperienceYears = *req.ExperienceYears
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Driver updated",
		zap.String("driver_id", driver.ID),
		zap.String("event", "driver_updated"),
	)

	return &driver, nil
}

func (s *Service) DeleteDriver(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("Driver deleted",
		zap.String("driver_id", id),
		zap.String("event", "driver_deleted"),
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
