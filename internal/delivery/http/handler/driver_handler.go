package handler

import (
	"net/http"

	"transport-console/internal/usecase/driver"
	"transport-console/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	service *driver.Service
}

func NewDriverHandler(service *driver.Service) *DriverHandler {
	return &DriverHandler{service: service}
}

func (h *DriverHandler) RegisterRoutes(router *gin.RouterGroup) {
	drivers := router.Group("/drivers")
	{
		drivers.GET("", h.ListDrivers)
		drivers.GET("/:id", h.GetDriver)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)
	}
}

func (h *DriverHandler) ListDrivers(c *gin.Context) {
	var req driver.ListDriversRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	drivers, err := h.service.ListDrivers(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}

func (h *DriverHandler) GetDriver(c *gin.Context) {
	result, err := h.service.GetDriver(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", result)
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req driver.CreateDriverRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateDriver(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", result)
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	var req driver.UpdateDriverRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateDriver(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", result)
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	if err := h.service.DeleteDriver(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver deleted successfully", nil)
}
