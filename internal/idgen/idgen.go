// Package idgen produces record identifiers. Opaque ids are the primary
// keys; shipment numbers are human-readable display references whose
// uniqueness is probabilistic, not guaranteed.
package idgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const numberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewID returns a new opaque unique id. Collision probability is accepted
// as negligible; there is no global registry check.
func NewID() string {
	return uuid.New().String()
}

// NewShipmentNumber returns a display reference of the form
// SHP-YYYYMMDD-XXXX. Callers must not rely on it as a primary key.
func NewShipmentNumber() string {
	var suffix strings.Builder
	for i := 0; i < 4; i++ {
		suffix.WriteByte(numberAlphabet[rand.Intn(len(numberAlphabet))])
	}

	return fmt.Sprintf("SHP-%s-%s", time.Now().Format("20060102"), suffix.String())
}
