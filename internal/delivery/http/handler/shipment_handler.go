package handler

import (
	"io"
	"net/http"

	"transport-console/internal/usecase/shipment"
	"transport-console/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	service *shipment.Service
}

func NewShipmentHandler(service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.GET("", h.ListShipments)
		shipments.GET("/statistics", h.GetStatistics)
		shipments.GET("/:id", h.GetShipment)
		shipments.POST("", h.CreateShipment)
		shipments.PUT("/:id", h.UpdateShipment)
		shipments.PUT("/:id/status", h.UpdateStatus)
		shipments.DELETE("/:id", h.DeleteShipment)

		shipments.POST("/import", h.Import)
		shipments.GET("/import/template", h.Template)
	}

	backup := router.Group("/backup")
	{
		backup.GET("/export", h.Export)
		backup.POST("/restore", h.Restore)
		backup.GET("/report", h.Report)
	}
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	var req shipment.ListShipmentsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	shipments, err := h.service.ListShipments(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipments retrieved successfully", shipments)
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	result, err := h.service.GetShipment(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment retrieved successfully", result)
}

func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req shipment.CreateShipmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateShipment(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shipment created successfully", result)
}

func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	var req shipment.UpdateShipmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateShipment(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment updated successfully", result)
}

func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	var req shipment.UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment status updated successfully", result)
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	if err := h.service.DeleteShipment(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment deleted successfully", nil)
}

func (h *ShipmentHandler) GetStatistics(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Statistics retrieved successfully", h.service.GetStatistics())
}

// Import accepts a CSV payload in the request body. Skipped rows are
// reported alongside the merged count; an unreadable payload merges
// nothing.
func (h *ShipmentHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Empty import payload")
		return
	}

	result, err := h.service.Import(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import completed", result)
}

func (h *ShipmentHandler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="shipments_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(h.service.Template()))
}

func (h *ShipmentHandler) Export(c *gin.Context) {
	document, err := h.service.ExportJSON()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transport_console_backup.json"`)
	c.Data(http.StatusOK, "application/json", document)
}

func (h *ShipmentHandler) Restore(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Empty backup payload")
		return
	}

	result, err := h.service.Restore(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Backup restored", result)
}

func (h *ShipmentHandler) Report(c *gin.Context) {
	report, err := h.service.Report()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fleet_report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report)
}
