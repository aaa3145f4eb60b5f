// Package importer parses a delimited bulk payload into candidate
// shipments. It is best-effort by design: one malformed row never aborts
// the batch, only an unreadable payload does.
package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"time"

	"transport-console/internal/domain"
	appErrors "transport-console/pkg/errors"
)

// UnavailableSentinel fills required identifying fields that are missing
// from an imported row.
const UnavailableSentinel = "Unavailable"

// DefaultDeliveryOffset is added to the current date when a row carries no
// usable estimated delivery date.
const DefaultDeliveryOffset = 72 * time.Hour

var headerColumns = []string{
	"ShipmentNumber",
	"Origin",
	"Destination",
	"CustomerID",
	"Status",
	"Priority",
	"EstimatedPickupDate",
	"EstimatedDeliveryDate",
	"ItemsJSON",
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Options tune row defaulting. The zero value uses time.Now and
// DefaultDeliveryOffset.
type Options struct {
	Now            func() time.Time
	DeliveryOffset time.Duration
}

// Result distinguishes "some rows skipped" from "payload unreadable": the
// latter is reported through the error return of Parse and merges nothing.
type Result struct {
	Shipments []domain.Shipment
	Skipped   int
}

// itemRow is the nested encoding used by the ItemsJSON column. Its field
// names follow the import payload, not the persisted layout.
type itemRow struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	WeightKg  float64 `json:"weightKg"`
	IsFragile bool    `json:"isFragile"`
}

// Parse maps a CSV payload into candidate shipments. The first row names
// fields; matching is order-independent and tolerant of case and
// whitespace variation. Returned shipments carry no id or tracking history
// yet; they are merged through the repository's usual create path.
func Parse(payload []byte, opts Options) (Result, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	offset := opts.DeliveryOffset
	if offset == 0 {
		offset = DefaultDeliveryOffset
	}

	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, appErrors.NewAppError(
			"UNREADABLE_PAYLOAD",
			"Import payload could not be parsed",
			appErrors.ErrUnreadablePayload,
		)
	}
	if len(records) < 2 {
		return Result{}, appErrors.NewAppError(
			"UNREADABLE_PAYLOAD",
			"Import payload has no data rows",
			appErrors.ErrUnreadablePayload,
		)
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[normalizeHeader(name)] = i
	}

	result := Result{}
	for _, record := range records[1:] {
		if isBlankRow(record) {
			continue
		}

		field := func(name string) string {
			idx, ok := columns[normalizeHeader(name)]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		// Rows whose origin cannot be determined are dropped; the rest of
		// the batch still imports.
		origin := field("Origin")
		if origin == "" {
			result.Skipped++
			continue
		}

		destination := field("Destination")
		if destination == "" {
			destination = UnavailableSentinel
		}

		createdAt := now()
		shipment := domain.Shipment{
			ShipmentNumber:      field("ShipmentNumber"),
			Origin:              origin,
			Destination:         destination,
			CustomerID:          field("CustomerID"),
			Status:              parseStatus(field("Status")),
			Priority:            parsePriority(field("Priority")),
			EstimatedPickupAt:   parseDate(field("EstimatedPickupDate"), createdAt),
			EstimatedDeliveryAt: parseDate(field("EstimatedDeliveryDate"), createdAt.Add(offset)),
			Items:               parseItems(field("ItemsJSON")),
		}
		shipment.RecomputeTotalWeight()

		result.Shipments = append(result.Shipments, shipment)
	}

	return result, nil
}

// Template produces a minimal one-row example payload matching the
// expected header schema. Its output must import with zero drops.
func Template() string {
	items, _ := json.Marshal([]itemRow{{
		Name:      "Pallet of electronics",
		Quantity:  2,
		WeightKg:  120,
		IsFragile: true,
	}})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(headerColumns)
	_ = w.Write([]string{
		"SHP-20260115-A2C4",
		"Chicago, IL",
		"Dallas, TX",
		"",
		string(domain.StatusPending),
		string(domain.PriorityMedium),
		"2026-01-15",
		"2026-01-18",
		string(items),
	})
	w.Flush()

	return buf.String()
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name)
	return name
}

func isBlankRow(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func parseStatus(raw string) domain.ShipmentStatus {
	status := domain.ShipmentStatus(normalizeHeader(raw))
	// Header normalization strips separators, so rebuild the snake_case
	// form before matching.
	for _, known := range domain.ShipmentStatuses() {
		if normalizeHeader(string(known)) == string(status) {
			return known
		}
	}
	return domain.StatusPending
}

func parsePriority(raw string) domain.ShipmentPriority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return domain.PriorityLow
	case "high":
		return domain.PriorityHigh
	case "urgent":
		return domain.PriorityUrgent
	default:
		return domain.PriorityMedium
	}
}

func parseDate(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}

// parseItems decodes the nested ItemsJSON fragment. A row whose fragment
// fails to parse falls back to a single placeholder item rather than being
// dropped.
func parseItems(raw string) []domain.ShipmentItem {
	placeholder := []domain.ShipmentItem{{
		Name:     "Unspecified item",
		Quantity: 1,
	}}

	if strings.TrimSpace(raw) == "" {
		return placeholder
	}

	var rows []itemRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil || len(rows) == 0 {
		return placeholder
	}

	items := make([]domain.ShipmentItem, 0, len(rows))
	for _, row := range rows {
		quantity := row.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, domain.ShipmentItem{
			Name:      row.Name,
			Quantity:  quantity,
			WeightKg:  row.WeightKg,
			IsFragile: row.IsFragile,
		})
	}
	return items
}
