package vehicle

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

// Service implements vehicle use cases
type Service struct {
	repo *repository.Repository[domain.Vehicle]
}

func NewService(repo *repository.Repository[domain.Vehicle]) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListVehicles(req *ListVehiclesRequest) (*VehicleListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	page, size := normalizePage(req.Page, req.PageSize)

	vehicles := query.Search(s.repo.List(), req.Search)
	vehicles = query.FilterStatus(vehicles, req.Status, func(v domain.Vehicle) string {
		return string(v.Status)
	})
	vehicles = query.Sort(vehicles, query.SortSpec{Key: req.SortBy, Descending: req.SortDesc})
	total := len(vehicles)

	return &VehicleListResponse{
		Vehicles:   query.Paginate(vehicles, page, size),
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: query.Pages(total, size),
	}, nil
}

func (s *Service) GetVehicle(id string) (*domain.Vehicle, error) {
	vehicle, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *Service) CreateVehicle(req *CreateVehicleRequest) (*domain.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	req.Name = utils.SanitizeString(req.Name)

	vehicle := s.repo.Create(NewVehicle(req, idgen.NewID(), time.Now()))

	logger.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID),
		zap.String("type", string(vehicle.Type)),
		zap.String("event", "vehicle_created"),
	)

	return &vehicle, nil
}

func (s *Service) UpdateVehicle(id string, req *UpdateVehicleRequest) (*domain.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	vehicle, err := s.repo.Update(id, func(v *domain.Vehicle) error {
		if req.Name != nil {
			v.Name = utils.SanitizeString(*req.Name)
		}
		if req.Type != nil {
			v.Type = domain.VehicleType(*req.Type)
		}
		if req.RegistrationNumber != nil {
			v.RegistrationNumber = *req.RegistrationNumber
		}
		if req.CapacityWeightKg != nil {
			v.CapacityWeightKg = *req.CapacityWeightKg
		}
		if req.CapacityVolumeM3 != nil {
			v.CapacityVolumeM3 = *req.CapacityVolumeM3
		}
		if req.Status != nil {
			v.Status = domain.VehicleStatus(*req.Status)
		}
		if req.CurrentLocation != nil {
			v.CurrentLocation = req.CurrentLocation
		}
		if req.FuelLevel != nil {
			v.FuelLevel = req.FuelLevel
		}
		if req.NextMaintenanceAt != nil {
			v.NextMaintenanceAt = req.NextMaintenanceAt
		}
		if req.AssignedDriverID != nil {
			// Mirrors Driver.AssignedVehicleID but the two are independent
			// weak references; no mutual consistency is maintained.
			if *req.AssignedDriverID == "" {
				v.AssignedDriverID = nil
			} else {
				v.AssignedDriverID = req.AssignedDriverID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vehicle updated",
		zap.String("vehicle_id", vehicle.ID),
		zap.String("event", "vehicle_updated"),
	)

	return &vehicle, nil
}

func (s *Service) DeleteVehicle(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("Vehicle deleted",
		zap.String("vehicle_id", id),
		zap.String("event", "vehicle_deleted"),
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
