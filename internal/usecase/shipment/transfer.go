package shipment

import (
	"time"

	"transport-console/internal/domain"
	"transport-console/internal/export"
	"transport-console/internal/idgen"
	"transport-console/internal/importer"
	"transport-console/internal/lifecycle"
	"transport-console/internal/logger"

	"go.uber.org/zap"
)

// Import merges a bulk CSV payload into the shipment collection through
// the usual create path. Skipped rows do not abort the batch; only an
// unreadable payload does, in which case nothing is merged.
func (s *Service) Import(payload []byte) (*ImportResultResponse, error) {
	result, err := importer.Parse(payload, s.importOpts)
	if err != nil {
		logger.Warn("Bulk import payload rejected", zap.Error(err))
		return nil, err
	}

	note := "Imported from bulk upload"
	now := time.Now()
	for _, candidate := range result.Shipments {
		candidate.ID = idgen.NewID()
		if candidate.ShipmentNumber == "" {
			candidate.ShipmentNumber = idgen.NewShipmentNumber()
		}
		candidate.CreatedAt = now
		candidate.UpdatedAt = now
		candidate.RecomputeTotalWeight()

		if err := lifecycle.Initialize(&candidate, &note, now); err != nil {
			// Parse already normalized the status; an unknown one here
			// means a skipped row, not a failed batch.
			continue
		}

		s.shipments.Create(candidate)
	}

	logger.Info("Bulk import completed",
		zap.Int("imported", len(result.Shipments)),
		zap.Int("skipped", result.Skipped),
		zap.String("event", "shipments_imported"),
	)

	return &ImportResultResponse{
		Imported: len(result.Shipments),
		Skipped:  result.Skipped,
	}, nil
}

// Template returns the one-row example payload for the import schema.
func (s *Service) Template() string {
	return importer.Template()
}

// Export builds the full-state backup document from all four collections.
func (s *Service) Export() export.Snapshot {
	return export.Snapshot{
		Shipments: s.shipments.List(),
		Vehicles:  s.vehicles.List(),
		Drivers:   s.drivers.List(),
		Customers: s.customers.List(),
	}
}

// ExportJSON renders the backup document for download.
func (s *Service) ExportJSON() ([]byte, error) {
	return export.Marshal(s.Export())
}

// Restore replaces all four collections with a previously exported
// snapshot. Export followed by Restore must reproduce identical entity
// counts per kind.
func (s *Service) Restore(raw []byte) (*RestoreResultResponse, error) {
	snapshot, err := export.Unmarshal(raw)
	if err != nil {
		return nil, err
	}

	s.shipments.ReplaceAll(snapshot.Shipments)
	s.vehicles.ReplaceAll(snapshot.Vehicles)
	s.drivers.ReplaceAll(snapshot.Drivers)
	s.customers.ReplaceAll(snapshot.Customers)

	logger.Info("Backup restored",
		zap.Int("shipments", len(snapshot.Shipments)),
		zap.Int("vehicles", len(snapshot.Vehicles)),
		zap.Int("drivers", len(snapshot.Drivers)),
		zap.Int("customers", len(snapshot.Customers)),
		zap.String("event", "backup_restored"),
	)

	return &RestoreResultResponse{
		Shipments: len(snapshot.Shipments),
		Vehicles:  len(snapshot.Vehicles),
		Drivers:   len(snapshot.Drivers),
		Customers: len(snapshot.Customers),
	}, nil
}

// Report renders the spreadsheet fleet report.
func (s *Service) Report() ([]byte, error) {
	return s.report.Generate(s.Export())
}

// GetStatistics summarizes the shipment collection.
func (s *Service) GetStatistics() *StatisticsResponse {
	shipments := s.shipments.List()

	stats := &StatisticsResponse{
		Total:    len(shipments),
		ByStatus: make(map[string]int),
	}
	for _, sh := range shipments {
		stats.ByStatus[string(sh.Status)]++
		stats.TotalWeightKg += sh.TotalWeightKg
		if sh.Status != domain.StatusDelivered && sh.Status != domain.StatusCancelled {
			stats.Active++
		}
	}

	return stats
}
