package handler

import (
	"net/http"

	"transport-console/internal/usecase/vehicle"
	"transport-console/pkg/utils"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	service *vehicle.Service
}

func NewVehicleHandler(service *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
	}
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var req vehicle.ListVehiclesRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	vehicles, err := h.service.ListVehicles(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	result, err := h.service.GetVehicle(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", result)
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req vehicle.CreateVehicleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateVehicle(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Vehicle created successfully", result)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var req vehicle.UpdateVehicleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateVehicle(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", result)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.service.DeleteVehicle(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}
