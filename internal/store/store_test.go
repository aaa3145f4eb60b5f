package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transport-console/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := OpenInMemory("test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)

	customers := []domain.Customer{
		{ID: "cus-1", Name: "Northline Retail Group"},
		{ID: "cus-2", Name: "Gulfport Fresh Foods"},
	}
	require.NoError(t, st.Save("customers", customers))

	var loaded []domain.Customer
	require.True(t, st.Load("customers", &loaded))
	assert.Equal(t, customers, loaded)
}

func TestLoadMissingKeyFallsBack(t *testing.T) {
	st := newTestStore(t)

	var loaded []domain.Customer
	assert.False(t, st.Load("customers", &loaded))
	assert.Empty(t, loaded)
}

func TestLoadCorruptDataFallsBack(t *testing.T) {
	st := newTestStore(t)

	// A payload of the wrong shape decodes like corrupt data: the caller
	// gets false and falls back to defaults instead of an error.
	require.NoError(t, st.Save("customers", map[string]string{"oops": "not a collection"}))

	var loaded []domain.Customer
	assert.False(t, st.Load("customers", &loaded))
}

func TestKeysAreNamespaced(t *testing.T) {
	st := newTestStore(t)

	other, err := OpenInMemory("other", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Close() })

	require.NoError(t, st.Save("shipments", []string{"a"}))

	assert.Equal(t, []byte("test:shipments"), st.key("shipments"))
	assert.Equal(t, []byte("other:shipments"), other.key("shipments"))
}

func TestHealth(t *testing.T) {
	st := newTestStore(t)
	assert.NoError(t, st.Health())

	require.NoError(t, st.Close())
	assert.Error(t, st.Health())
}
