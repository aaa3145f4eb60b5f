package shipment

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transport-console/internal/domain"
	"transport-console/internal/importer"
	"transport-console/internal/logger"
	"transport-console/internal/repository"
	"transport-console/internal/store"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fixture struct {
	service   *Service
	shipments *repository.Repository[domain.Shipment]
	customers *repository.Repository[domain.Customer]
	vehicles  *repository.Repository[domain.Vehicle]
	drivers   *repository.Repository[domain.Driver]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := store.OpenInMemory("test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	log := zap.NewNop()
	f := &fixture{
		shipments: repository.New[domain.Shipment](st, log, repository.Config{Key: "shipments", InsertAtHead: true}, nil),
		customers: repository.New[domain.Customer](st, log, repository.Config{Key: "customers"}, nil),
		vehicles:  repository.New[domain.Vehicle](st, log, repository.Config{Key: "vehicles"}, nil),
		drivers:   repository.New[domain.Driver](st, log, repository.Config{Key: "drivers"}, nil),
	}
	f.service = NewService(f.shipments, f.customers, f.vehicles, f.drivers, importer.Options{})

	f.customers.Create(domain.Customer{ID: "cus-1", Name: "Northline Retail Group"})

	return f
}

func createRequest(destination string) *CreateShipmentRequest {
	return &CreateShipmentRequest{
		Origin:              "Chicago, IL",
		Destination:         destination,
		CustomerID:          "cus-1",
		EstimatedPickupAt:   time.Now().AddDate(0, 0, 1),
		EstimatedDeliveryAt: time.Now().AddDate(0, 0, 4),
		Items: []ShipmentItemRequest{
			{Name: "Crate", Quantity: 3, WeightKg: 10.5},
			{Name: "Glass", Quantity: 2, WeightKg: 4, IsFragile: true},
		},
	}
}

func TestCreateShipment(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateShipment(createRequest("Dallas, TX"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, strings.HasPrefix(created.ShipmentNumber, "SHP-"))
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Equal(t, "Northline Retail Group", created.CustomerName)
	assert.Equal(t, "Unassigned", created.VehicleName)

	// Derived weight invariant.
	assert.InDelta(t, 3*10.5+2*4, created.TotalWeightKg, 1e-9)

	// Creation appends the first tracking event.
	require.Len(t, created.TrackingHistory, 1)
	assert.Equal(t, created.Status, created.TrackingHistory[0].Status)
}

func TestCreateShipmentRequiresExistingCustomer(t *testing.T) {
	f := newFixture(t)

	req := createRequest("Dallas, TX")
	req.CustomerID = "cus-404"

	_, err := f.service.CreateShipment(req)
	require.Error(t, err)
	assert.Zero(t, f.shipments.Count())
}

func TestCreateShipmentValidation(t *testing.T) {
	f := newFixture(t)

	req := createRequest("Dallas, TX")
	req.Items = nil

	_, err := f.service.CreateShipment(req)
	require.Error(t, err)
	// No partial write occurs on validation failure.
	assert.Zero(t, f.shipments.Count())
}

func TestUpdateShipmentRecomputesWeight(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.CreateShipment(createRequest("Dallas, TX"))
	require.NoError(t, err)

	updated, err := f.service.UpdateShipment(created.ID, &UpdateShipmentRequest{
		Items: []ShipmentItemRequest{{Name: "Pallet", Quantity: 4, WeightKg: 25}},
	})
	require.NoError(t, err)

	assert.InDelta(t, 100, updated.TotalWeightKg, 1e-9)
	// A field-only update does not touch the tracking trail.
	assert.Len(t, updated.TrackingHistory, 1)
}

func TestUpdateShipmentStatusGoesThroughStateMachine(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.CreateShipment(createRequest("Dallas, TX"))
	require.NoError(t, err)

	status := string(domain.StatusInTransit)
	note := "Left the yard"
	updated, err := f.service.UpdateShipment(created.ID, &UpdateShipmentRequest{
		Status:      &status,
		StatusNotes: &note,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInTransit, updated.Status)
	require.Len(t, updated.TrackingHistory, 2)
	last := updated.TrackingHistory[1]
	assert.Equal(t, domain.StatusInTransit, last.Status)
	require.NotNil(t, last.Notes)
	assert.Equal(t, note, *last.Notes)
}

func TestUpdateStatusAuditCompleteness(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.CreateShipment(createRequest("Dallas, TX"))
	require.NoError(t, err)

	sequence := []domain.ShipmentStatus{
		domain.StatusInfoReceived,
		domain.StatusInTransit,
		domain.StatusDelivered,
		// Permissive on purpose: delivered is not enforced as terminal.
		domain.StatusException,
	}
	for i, status := range sequence {
		updated, err := f.service.UpdateStatus(created.ID, &UpdateStatusRequest{Status: string(status)})
		require.NoError(t, err)

		assert.Equal(t, status, updated.Status)
		require.Len(t, updated.TrackingHistory, i+2)
		assert.Equal(t, status, updated.TrackingHistory[len(updated.TrackingHistory)-1].Status)
	}
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UpdateStatus("shp-404", &UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, f.service.DeleteShipment("shp-404"), domain.ErrNotFound)
}

func TestListShipmentsFiltersAreConjunctive(t *testing.T) {
	f := newFixture(t)

	delivered := string(domain.StatusDelivered)
	for _, destination := range []string{"Austin, TX", "Boise, ID"} {
		req := createRequest(destination)
		req.Status = &delivered
		_, err := f.service.CreateShipment(req)
		require.NoError(t, err)
	}
	for _, destination := range []string{"Tulsa, OK", "Reno, NV", "Fargo, ND"} {
		_, err := f.service.CreateShipment(createRequest(destination))
		require.NoError(t, err)
	}

	listed, err := f.service.ListShipments(&ListShipmentsRequest{
		Status: string(domain.StatusPending),
		Search: "tulsa",
	})
	require.NoError(t, err)

	require.Len(t, listed.Shipments, 1)
	assert.Equal(t, "Tulsa, OK", listed.Shipments[0].Destination)
	assert.Equal(t, 1, listed.Total)
	assert.Equal(t, 1, listed.TotalPages)
}

func TestListShipmentsNewestFirst(t *testing.T) {
	f := newFixture(t)

	first, err := f.service.CreateShipment(createRequest("Austin, TX"))
	require.NoError(t, err)
	second, err := f.service.CreateShipment(createRequest("Boise, ID"))
	require.NoError(t, err)

	listed, err := f.service.ListShipments(&ListShipmentsRequest{})
	require.NoError(t, err)

	require.Len(t, listed.Shipments, 2)
	assert.Equal(t, second.ID, listed.Shipments[0].ID)
	assert.Equal(t, first.ID, listed.Shipments[1].ID)
}

func TestDanglingReferencesRenderAsUnknown(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.CreateShipment(createRequest("Dallas, TX"))
	require.NoError(t, err)

	// Deleting the customer does not cascade; the shipment keeps the
	// dangling id and renders it as Unknown.
	require.NoError(t, f.customers.Delete("cus-1"))

	fetched, err := f.service.GetShipment(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cus-1", fetched.CustomerID)
	assert.Equal(t, "Unknown", fetched.CustomerName)
}

func TestImportPartialTolerance(t *testing.T) {
	f := newFixture(t)

	payload := strings.Join([]string{
		"ShipmentNumber,Origin,Destination,CustomerID,Status,Priority,EstimatedPickupDate,EstimatedDeliveryDate,ItemsJSON",
		"SHP-1,Chicago,Dallas,cus-1,pending,low,2026-02-11,2026-02-14,",
		"SHP-2,,Austin,cus-1,pending,low,2026-02-11,2026-02-14,",
		"SHP-3,Memphis,Tulsa,cus-1,in_transit,high,2026-02-12,2026-02-15,",
	}, "\n")

	result, err := f.service.Import([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, f.shipments.Count())

	// Imported shipments go through the usual create path and carry a
	// tracking trail from the start.
	for _, sh := range f.shipments.List() {
		require.NotEmpty(t, sh.TrackingHistory)
		assert.Equal(t, sh.Status, sh.TrackingHistory[len(sh.TrackingHistory)-1].Status)
	}
}

func TestImportUnreadablePayloadMergesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Import([]byte("Origin,Destination\n\"unterminated"))
	require.Error(t, err)
	assert.Zero(t, f.shipments.Count())
}

func TestTemplateRoundTrip(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Import([]byte(f.service.Template()))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Skipped)
}

func TestExportRestoreRoundTrip(t *testing.T) {
	f := newFixture(t)

	for _, destination := range []string{"Austin, TX", "Boise, ID", "Tulsa, OK"} {
		_, err := f.service.CreateShipment(createRequest(destination))
		require.NoError(t, err)
	}
	f.vehicles.Create(domain.Vehicle{ID: "veh-1", Name: "Unit 12"})
	f.drivers.Create(domain.Driver{ID: "drv-1", Name: "Samuel Ortega"})

	document, err := f.service.ExportJSON()
	require.NoError(t, err)

	restored, err := f.service.Restore(document)
	require.NoError(t, err)

	assert.Equal(t, 3, restored.Shipments)
	assert.Equal(t, 1, restored.Vehicles)
	assert.Equal(t, 1, restored.Drivers)
	assert.Equal(t, 1, restored.Customers)

	assert.Equal(t, 3, f.shipments.Count())
	assert.Equal(t, 1, f.customers.Count())
}

func TestGetStatistics(t *testing.T) {
	f := newFixture(t)

	delivered := string(domain.StatusDelivered)
	req := createRequest("Austin, TX")
	req.Status = &delivered
	_, err := f.service.CreateShipment(req)
	require.NoError(t, err)

	_, err = f.service.CreateShipment(createRequest("Tulsa, OK"))
	require.NoError(t, err)

	stats := f.service.GetStatistics()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.ByStatus[string(domain.StatusDelivered)])
	assert.Equal(t, 1, stats.ByStatus[string(domain.StatusPending)])
	assert.Positive(t, stats.TotalWeightKg)
}
