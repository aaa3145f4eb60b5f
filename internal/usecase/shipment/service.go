package shipment

import (
	"time"

	"transport-console/internal/domain"
	"transport-console/internal/export"
	"transport-console/internal/idgen"
	"transport-console/internal/importer"
	"transport-console/internal/lifecycle"
	"transport-console/internal/logger"
	"transport-console/internal/query"
	"transport-console/internal/repository"
	appErrors "transport-console/pkg/errors"
	"transport-console/pkg/utils"

	"go.uber.org/zap"
)

const defaultPageSize = 10

// Service implements shipment use cases
type Service struct {
	shipments *repository.Repository[domain.Shipment]
	customers *repository.Repository[domain.Customer]
	vehicles  *repository.Repository[domain.Vehicle]
	drivers   *repository.Repository[domain.Driver]

	importOpts importer.Options
	report     *export.ReportGenerator
}

// NewService creates a new shipment service
func NewService(
	shipments *repository.Repository[domain.Shipment],
	customers *repository.Repository[domain.Customer],
	vehicles *repository.Repository[domain.Vehicle],
	drivers *repository.Repository[domain.Driver],
	importOpts importer.Options,
) *Service {
	return &Service{
		shipments:  shipments,
		customers:  customers,
		vehicles:   vehicles,
		drivers:    drivers,
		importOpts: importOpts,
		report:     export.NewReportGenerator(),
	}
}

func (s *Service) ListShipments(req *ListShipmentsRequest) (*ShipmentListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}

	page, size := normalizePage(req.Page, req.PageSize)

	// Fixed evaluation order: filter, then sort, then paginate.
	shipments := query.Search(s.shipments.List(), req.Search)
	shipments = query.FilterStatus(shipments, req.Status, func(sh domain.Shipment) string {
		return string(sh.Status)
	})
	shipments = query.Sort(shipments, query.SortSpec{Key: req.SortBy, Descending: req.SortDesc})
	total := len(shipments)

	pageItems := query.Paginate(shipments, page, size)
	responses := make([]ShipmentResponse, 0, len(pageItems))
	for _, sh := range pageItems {
		responses = append(responses, s.toResponse(sh))
	}

	return &ShipmentListResponse{
		Shipments:  responses,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: query.Pages(total, size),
	}, nil
}

func (s *Service) GetShipment(id string) (*ShipmentResponse, error) {
	shipment, err := s.shipments.Get(id)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(shipment)
	return &resp, nil
}

func (s *Service) CreateShipment(req *CreateShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	// The customer reference must resolve at creation time; vehicle and
	// driver assignment stay optional.
	if _, err := s.customers.Get(req.CustomerID); err != nil {
		return nil, appErrors.NewAppError("CUSTOMER_NOT_FOUND", "Customer does not exist", domain.ErrCustomerNotFound)
	}

	now := time.Now()
	shipment := domain.Shipment{
		ID:                  idgen.NewID(),
		ShipmentNumber:      idgen.NewShipmentNumber(),
		Origin:              utils.SanitizeString(req.Origin),
		Destination:         utils.SanitizeString(req.Destination),
		CustomerID:          req.CustomerID,
		VehicleID:           req.VehicleID,
		DriverID:            req.DriverID,
		Priority:            domain.PriorityMedium,
		EstimatedPickupAt:   req.EstimatedPickupAt,
		EstimatedDeliveryAt: req.EstimatedDeliveryAt,
		Items:               itemsFromRequest(req.Items),
		Notes:               req.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if req.Status != nil {
		shipment.Status = domain.ShipmentStatus(*req.Status)
	}
	if req.Priority != nil {
		shipment.Priority = domain.ShipmentPriority(*req.Priority)
	}
	shipment.RecomputeTotalWeight()

	// Creation is itself a transition into the initial status and appends
	// the first tracking event.
	if err := lifecycle.Initialize(&shipment, nil, now); err != nil {
		return nil, err
	}

	created := s.shipments.Create(shipment)

	logger.Info("Shipment created",
		zap.String("shipment_id", created.ID),
		zap.String("shipment_number", created.ShipmentNumber),
		zap.String("status", string(created.Status)),
		zap.String("event", "shipment_created"),
	)

	resp := s.toResponse(created)
	return &resp, nil
}

func (s *Service) UpdateShipment(id string, req *UpdateShipmentRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := time.Now()
	shipment, err := s.shipments.Update(id, func(sh *domain.Shipment) error {
		if req.Origin != nil {
			sh.Origin = utils.SanitizeString(*req.Origin)
		}
		if req.Destination != nil {
			sh.Destination = utils.SanitizeString(*req.Destination)
		}
		if req.CustomerID != nil {
			sh.CustomerID = *req.CustomerID
		}
		if req.VehicleID != nil {
			if *req.VehicleID == "" {
				sh.VehicleID = nil
			} else {
				sh.VehicleID = req.VehicleID
			}
		}
		if req.DriverID != nil {
			if *req.DriverID == "" {
				sh.DriverID = nil
			} else {
				sh.DriverID = req.DriverID
			}
		}
		if req.Priority != nil {
			sh.Priority = domain.ShipmentPriority(*req.Priority)
		}
		if req.EstimatedPickupAt != nil {
			sh.EstimatedPickupAt = *req.EstimatedPickupAt
		}
		if req.EstimatedDeliveryAt != nil {
			sh.EstimatedDeliveryAt = *req.EstimatedDeliveryAt
		}
		if req.ActualPickupAt != nil {
			sh.ActualPickupAt = req.ActualPickupAt
		}
		if req.ActualDeliveryAt != nil {
			sh.ActualDeliveryAt = req.ActualDeliveryAt
		}
		if req.Items != nil {
			sh.Items = itemsFromRequest(req.Items)
		}
		if req.Notes != nil {
			sh.Notes = req.Notes
		}
		if req.ProofOfDelivery != nil {
			sh.ProofOfDelivery = req.ProofOfDelivery
		}

		// A status change only ever goes through the state machine so the
		// audit trail stays complete.
		if req.Status != nil && domain.ShipmentStatus(*req.Status) != sh.Status {
			if err := lifecycle.Transition(sh, domain.ShipmentStatus(*req.Status), req.StatusLocation, req.StatusNotes, now); err != nil {
				return err
			}
		}

		sh.UpdatedAt = now
		sh.RecomputeTotalWeight()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Shipment updated",
		zap.String("shipment_id", shipment.ID),
		zap.String("event", "shipment_updated"),
	)

	resp := s.toResponse(shipment)
	return &resp, nil
}

func (s *Service) UpdateStatus(id string, req *UpdateStatusRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	now := time.Now()
	shipment, err := s.shipments.Update(id, func(sh *domain.Shipment) error {
		return lifecycle.Transition(sh, domain.ShipmentStatus(req.Status), req.Location, req.Notes, now)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Shipment status updated",
		zap.String("shipment_id", shipment.ID),
		zap.String("status", string(shipment.Status)),
		zap.String("event", "shipment_status_updated"),
	)

	resp := s.toResponse(shipment)
	return &resp, nil
}

func (s *Service) DeleteShipment(id string) error {
	if err := s.shipments.Delete(id); err != nil {
		return err
	}

	logger.Info("Shipment deleted",
		zap.String("shipment_id", id),
		zap.String("event", "shipment_deleted"),
	)

	return nil
}

// toResponse resolves the shipment's weak references lazily. Dangling
// references are rendered, never treated as errors.
func (s *Service) toResponse(shipment domain.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		Shipment:     shipment,
		CustomerName: "Unknown",
		VehicleName:  "Unassigned",
		DriverName:   "Unassigned",
	}

	if customer, err := s.customers.Get(shipment.CustomerID); err == nil {
		resp.CustomerName = customer.Name
	}
	if shipment.VehicleID != nil {
		resp.VehicleName = "Unknown"
		if vehicle, err := s.vehicles.Get(*shipment.VehicleID); err == nil {
			resp.VehicleName = vehicle.Name
		}
	}
	if shipment.DriverID != nil {
		resp.DriverName = "Unknown"
		if driver, err := s.drivers.Get(*shipment.DriverID); err == nil {
			resp.DriverName = driver.Name
		}
	}

	return resp
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
