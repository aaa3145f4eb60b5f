package routes

import (
	"net/http"

	"transport-console/internal/config"
	"transport-console/internal/delivery/http/handler"
	"transport-console/internal/domain"
	"transport-console/internal/importer"
	"transport-console/internal/logger"
	"transport-console/internal/middleware"
	"transport-console/internal/repository"
	"transport-console/internal/seed"
	"transport-console/internal/store"
	"transport-console/internal/usecase/customer"
	"transport-console/internal/usecase/driver"
	"transport-console/internal/usecase/shipment"
	"transport-console/internal/usecase/vehicle"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, st *store.Store) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security
	// headers, CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(cfg.Import.MaxPayloadBytes))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := st.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Store is not available",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	log := logger.Logger

	customerRepo := repository.New(st, log, repository.Config{Key: "customers"}, seed.Customers)
	driverRepo := repository.New(st, log, repository.Config{Key: "drivers"}, seed.Drivers)
	vehicleRepo := repository.New(st, log, repository.Config{Key: "vehicles"}, seed.Vehicles)
	// Shipments list most-recently-created first.
	shipmentRepo := repository.New[domain.Shipment](st, log, repository.Config{Key: "shipments", InsertAtHead: true}, seed.Shipments)

	customerHandler := handler.NewCustomerHandler(customer.NewService(customerRepo))
	driverHandler := handler.NewDriverHandler(driver.NewService(driverRepo))
	vehicleHandler := handler.NewVehicleHandler(vehicle.NewService(vehicleRepo))

	shipmentService := shipment.NewService(shipmentRepo, customerRepo, vehicleRepo, driverRepo, importer.Options{
		DeliveryOffset: cfg.Import.DefaultDeliveryOffset,
	})
	shipmentHandler := handler.NewShipmentHandler(shipmentService)

	v1 := router.Group("/api/v1")
	{
		customerHandler.RegisterRoutes(v1)
		driverHandler.RegisterRoutes(v1)
		vehicleHandler.RegisterRoutes(v1)
		shipmentHandler.RegisterRoutes(v1)
	}

	logger.Info("All routes initialized")
	return router
}
