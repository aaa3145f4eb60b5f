package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-console/internal/seed"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snapshot := Snapshot{
		Shipments: seed.Shipments(),
		Vehicles:  seed.Vehicles(),
		Drivers:   seed.Drivers(),
		Customers: seed.Customers(),
	}

	raw, err := Marshal(snapshot)
	require.NoError(t, err)

	restored, err := Unmarshal(raw)
	require.NoError(t, err)

	// The backup format must round-trip losslessly.
	assert.Equal(t, snapshot, restored)
}

func TestUnmarshalRejectsCorruptDocument(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	require.Error(t, err)
}

func TestReportGenerates(t *testing.T) {
	generator := NewReportGenerator()

	report, err := generator.Generate(Snapshot{
		Shipments: seed.Shipments(),
		Vehicles:  seed.Vehicles(),
		Drivers:   seed.Drivers(),
		Customers: seed.Customers(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, report)

	// XLSX is a zip container.
	assert.Equal(t, []byte{'P', 'K'}, report[:2])
}
