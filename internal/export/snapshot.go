// Package export implements the system's backup/restore format: one JSON
// document with four top-level arrays, structurally identical to the
// persisted layout, plus a spreadsheet rendering of the fleet for offline
// reporting.
package export

import (
	"encoding/json"

	"transport-console/internal/domain"
	appErrors "transport-console/pkg/errors"
)

// Snapshot is the full-state backup document. It must round-trip
// losslessly through Unmarshal.
type Snapshot struct {
	Shipments []domain.Shipment `json:"shipments"`
	Vehicles  []domain.Vehicle  `json:"vehicles"`
	Drivers   []domain.Driver   `json:"drivers"`
	Customers []domain.Customer `json:"customers"`
}

// Marshal encodes the snapshot for download.
func Marshal(snapshot Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// Unmarshal decodes a previously exported snapshot.
func Unmarshal(raw []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return Snapshot{}, appErrors.NewAppError(
			"DECODE_ERROR",
			"Backup document could not be decoded",
			appErrors.ErrDecode,
		)
	}
	return snapshot, nil
}
