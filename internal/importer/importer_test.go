package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-console/internal/domain"
	appErrors "transport-console/pkg/errors"
)

var testNow = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func parse(t *testing.T, payload string) Result {
	t.Helper()

	result, err := Parse([]byte(payload), Options{Now: func() time.Time { return testNow }})
	require.NoError(t, err)
	return result
}

func TestParseDropsRowsWithoutOrigin(t *testing.T) {
	payload := strings.Join([]string{
		"ShipmentNumber,Origin,Destination,CustomerID,Status,Priority,EstimatedPickupDate,EstimatedDeliveryDate,ItemsJSON",
		"SHP-1,Chicago,Dallas,cus-1,pending,low,2026-02-11,2026-02-14,",
		"SHP-2,,Austin,cus-1,pending,low,2026-02-11,2026-02-14,",
		"SHP-3,Memphis,Tulsa,cus-2,in_transit,high,2026-02-12,2026-02-15,",
	}, "\n")

	result := parse(t, payload)

	// One malformed row never aborts the rest of the batch.
	require.Len(t, result.Shipments, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "Chicago", result.Shipments[0].Origin)
	assert.Equal(t, "Memphis", result.Shipments[1].Origin)
}

func TestParseHeaderMatchingIsTolerant(t *testing.T) {
	payload := strings.Join([]string{
		// Shuffled order, odd casing and stray spaces.
		"origin, DESTINATION ,shipment_number,Items JSON,customer id",
		"Chicago,Dallas,SHP-9,,cus-1",
	}, "\n")

	result := parse(t, payload)

	require.Len(t, result.Shipments, 1)
	shipment := result.Shipments[0]
	assert.Equal(t, "SHP-9", shipment.ShipmentNumber)
	assert.Equal(t, "Dallas", shipment.Destination)
	assert.Equal(t, "cus-1", shipment.CustomerID)
}

func TestParseDefaults(t *testing.T) {
	payload := strings.Join([]string{
		"Origin,Destination,Status,Priority,EstimatedPickupDate,EstimatedDeliveryDate,ItemsJSON",
		"Chicago,,warp_speed,super,not-a-date,,{broken json",
	}, "\n")

	result := parse(t, payload)
	require.Len(t, result.Shipments, 1)
	shipment := result.Shipments[0]

	assert.Equal(t, UnavailableSentinel, shipment.Destination)
	assert.Equal(t, domain.StatusPending, shipment.Status)
	assert.Equal(t, domain.PriorityMedium, shipment.Priority)
	assert.Equal(t, testNow, shipment.EstimatedPickupAt)
	assert.Equal(t, testNow.Add(DefaultDeliveryOffset), shipment.EstimatedDeliveryAt)

	// Unparsable items fall back to a single placeholder rather than
	// dropping the row.
	require.Len(t, shipment.Items, 1)
	assert.Equal(t, "Unspecified item", shipment.Items[0].Name)
	assert.Equal(t, 1, shipment.Items[0].Quantity)
}

func TestParseItemsAndTotalWeight(t *testing.T) {
	payload := strings.Join([]string{
		"Origin,Destination,ItemsJSON",
		`Chicago,Dallas,"[{""name"":""Crate"",""quantity"":3,""weightKg"":10.5},{""name"":""Glass"",""quantity"":2,""weightKg"":4,""isFragile"":true}]"`,
	}, "\n")

	result := parse(t, payload)
	require.Len(t, result.Shipments, 1)
	shipment := result.Shipments[0]

	require.Len(t, shipment.Items, 2)
	assert.True(t, shipment.Items[1].IsFragile)
	assert.InDelta(t, 3*10.5+2*4, shipment.TotalWeightKg, 1e-9)
}

func TestParseStatusVariants(t *testing.T) {
	payload := strings.Join([]string{
		"Origin,Destination,Status",
		"A,B,In Transit",
		"C,D,OUT_FOR_DELIVERY",
		"E,F,delivered",
	}, "\n")

	result := parse(t, payload)
	require.Len(t, result.Shipments, 3)
	assert.Equal(t, domain.StatusInTransit, result.Shipments[0].Status)
	assert.Equal(t, domain.StatusOutForDelivery, result.Shipments[1].Status)
	assert.Equal(t, domain.StatusDelivered, result.Shipments[2].Status)
}

func TestParseUnreadablePayload(t *testing.T) {
	_, err := Parse([]byte(`Origin,Destination`+"\n"+`"unterminated`), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrUnreadablePayload)

	_, err = Parse([]byte("Origin,Destination\n"), Options{})
	assert.ErrorIs(t, err, appErrors.ErrUnreadablePayload)
}

func TestTemplateImportsWithZeroDrops(t *testing.T) {
	result := parse(t, Template())

	require.Len(t, result.Shipments, 1)
	assert.Zero(t, result.Skipped)

	shipment := result.Shipments[0]
	assert.NotEmpty(t, shipment.Origin)
	assert.NotEmpty(t, shipment.Destination)
	require.Len(t, shipment.Items, 1)
	assert.Positive(t, shipment.TotalWeightKg)
}
