package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"transport-console/internal/domain"
)

// ReportGenerator renders a snapshot as a two-sheet workbook: a fleet
// summary and a shipment detail listing.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (g *ReportGenerator) Generate(snapshot Snapshot) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	g.writeSummary(file, summarySheet, snapshot)

	detailSheet := "Shipments"
	if _, err := file.NewSheet(detailSheet); err != nil {
		return nil, err
	}
	g.writeShipments(file, detailSheet, snapshot.Shipments)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) writeSummary(file *excelize.File, sheet string, snapshot Snapshot) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Generated")
	set("B1", time.Now().Format("2006-01-02 15:04"))
	set("A2", "Shipments")
	set("B2", len(snapshot.Shipments))
	set("A3", "Vehicles")
	set("B3", len(snapshot.Vehicles))
	set("A4", "Drivers")
	set("B4", len(snapshot.Drivers))
	set("A5", "Customers")
	set("B5", len(snapshot.Customers))

	byStatus := map[domain.ShipmentStatus]int{}
	for _, shipment := range snapshot.Shipments {
		byStatus[shipment.Status]++
	}

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Shipments")
	for i, status := range domain.ShipmentStatuses() {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), byStatus[status])
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 14)
}

func (g *ReportGenerator) writeShipments(file *excelize.File, sheet string, shipments []domain.Shipment) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Number", "Origin", "Destination", "Status", "Priority",
		"Total weight, kg", "Items", "Est. pickup", "Est. delivery", "Created",
	}
	for i, header := range headers {
		column, _ := excelize.ColumnNumberToName(i + 1)
		set(column+"1", header)
	}

	for i, shipment := range shipments {
		row := i + 2
		set(fmt.Sprintf("A%d", row), shipment.ShipmentNumber)
		set(fmt.Sprintf("B%d", row), shipment.Origin)
		set(fmt.Sprintf("C%d", row), shipment.Destination)
		set(fmt.Sprintf("D%d", row), string(shipment.Status))
		set(fmt.Sprintf("E%d", row), string(shipment.Priority))
		set(fmt.Sprintf("F%d", row), shipment.TotalWeightKg)
		set(fmt.Sprintf("G%d", row), len(shipment.Items))
		set(fmt.Sprintf("H%d", row), shipment.EstimatedPickupAt.Format("2006-01-02"))
		set(fmt.Sprintf("I%d", row), shipment.EstimatedDeliveryAt.Format("2006-01-02"))
		set(fmt.Sprintf("J%d", row), shipment.CreatedAt.Format("2006-01-02"))
	}

	_ = file.SetColWidth(sheet, "A", "C", 20)
	_ = file.SetColWidth(sheet, "D", "J", 14)
}
