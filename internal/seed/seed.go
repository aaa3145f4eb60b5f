// Package seed provides the default dataset the console starts from when a
// persisted collection is absent or corrupt. Falling back here is not an
// error: the system prefers a working baseline over crashing.
package seed

import (
	"time"

	"transport-console/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func Customers() []domain.Customer {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	return []domain.Customer{
		{
			ID:            "cus-seed-0001",
			Name:          "Northline Retail Group",
			ContactPerson: "Maria Chen",
			Email:         "logistics@northline.example",
			Phone:         "+1 312 555 0114",
			Address:       "450 W Monroe St, Chicago, IL",
			CreatedAt:     base,
		},
		{
			ID:            "cus-seed-0002",
			Name:          "Gulfport Fresh Foods",
			ContactPerson: "Devon Park",
			Email:         "ops@gulfportfresh.example",
			Phone:         "+1 228 555 0171",
			Address:       "18 Harbor Dr, Gulfport, MS",
			Notes:         ptr("Refrigerated loads only."),
			CreatedAt:     base.Add(26 * time.Hour),
		},
	}
}

func Drivers() []domain.Driver {
	base := time.Date(2026, 1, 6, 8, 30, 0, 0, time.UTC)

	return []domain.Driver{
		{
			ID:                "drv-seed-0001",
			Name:              "Samuel Ortega",
			LicenseNumber:     "CDL-IL-558214",
			Phone:             "+1 773 555 0148",
			Email:             ptr("s.ortega@fleet.example"),
			AssignedVehicleID: ptr("veh-seed-0001"),
			Status:            domain.DriverActive,
			ExperienceYears:   11,
			CreatedAt:         base,
		},
		{
			ID:              "drv-seed-0002",
			Name:            "Lena Kovacs",
			LicenseNumber:   "CDL-TX-901472",
			Phone:           "+1 214 555 0190",
			Status:          domain.DriverOnLeave,
			ExperienceYears: 4,
			CreatedAt:       base.Add(3 * time.Hour),
		},
	}
}

func Vehicles() []domain.Vehicle {
	base := time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)

	return []domain.Vehicle{
		{
			ID:                 "veh-seed-0001",
			Name:               "Unit 12",
			Type:               domain.VehicleSemiTrailer,
			RegistrationNumber: "IL 88412-T",
			CapacityWeightKg:   22000,
			CapacityVolumeM3:   86,
			Status:             domain.VehicleInUse,
			CurrentLocation:    ptr("Chicago, IL"),
			FuelLevel:          ptr(64),
			AssignedDriverID:   ptr("drv-seed-0001"),
			CreatedAt:          base,
		},
		{
			ID:                 "veh-seed-0002",
			Name:               "Reefer 3",
			Type:               domain.VehicleRefrigeratedTruck,
			RegistrationNumber: "MS 20871-R",
			CapacityWeightKg:   9000,
			CapacityVolumeM3:   41,
			Status:             domain.VehicleMaintenance,
			NextMaintenanceAt:  ptr(base.AddDate(0, 0, 9)),
			CreatedAt:          base.Add(90 * time.Minute),
		},
	}
}

func Shipments() []domain.Shipment {
	created := time.Date(2026, 1, 7, 14, 0, 0, 0, time.UTC)

	shipment := domain.Shipment{
		ID:                  "shp-seed-0001",
		ShipmentNumber:      "SHP-20260107-K4N2",
		Origin:              "Chicago, IL",
		Destination:         "Dallas, TX",
		CustomerID:          "cus-seed-0001",
		VehicleID:           ptr("veh-seed-0001"),
		DriverID:            ptr("drv-seed-0001"),
		Status:              domain.StatusInTransit,
		Priority:            domain.PriorityHigh,
		EstimatedPickupAt:   created.AddDate(0, 0, 1),
		EstimatedDeliveryAt: created.AddDate(0, 0, 4),
		ActualPickupAt:      ptr(created.AddDate(0, 0, 1).Add(2 * time.Hour)),
		Items: []domain.ShipmentItem{
			{Name: "Store fixtures", Quantity: 12, WeightKg: 45},
			{Name: "Display glass", Quantity: 4, WeightKg: 18, IsFragile: true},
		},
		CreatedAt: created,
		UpdatedAt: created.AddDate(0, 0, 1).Add(2 * time.Hour),
		TrackingHistory: []domain.TrackingEvent{
			{Status: domain.StatusPending, Timestamp: created, Location: ptr("Chicago, IL")},
			{Status: domain.StatusInfoReceived, Timestamp: created.Add(5 * time.Hour)},
			{Status: domain.StatusInTransit, Timestamp: created.AddDate(0, 0, 1).Add(2 * time.Hour), Location: ptr("Springfield, IL")},
		},
	}
	shipment.RecomputeTotalWeight()

	return []domain.Shipment{shipment}
}
