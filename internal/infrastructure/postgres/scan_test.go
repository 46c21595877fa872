package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow emula el Scan de pgx: un valor nil representa NULL y deja el puntero
// destino en nil, igual que hace pgx con destinos **T.
type fakeRow struct {
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: %d destinos para %d valores", len(dest), len(r.values))
	}
	for i, d := range dest {
		v := r.values[i]
		switch out := d.(type) {
		case *string:
			*out = v.(string)
		case *bool:
			*out = v.(bool)
		case *time.Time:
			*out = v.(time.Time)
		case *[]string:
			*out = v.([]string)
		case **string:
			if v != nil {
				s := v.(string)
				*out = &s
			}
		case **time.Time:
			if v != nil {
				t := v.(time.Time)
				*out = &t
			}
		default:
			return fmt.Errorf("scan: destino no soportado %T", d)
		}
	}
	return nil
}

func TestScanTenant_FilaLegacyConNulos(t *testing.T) {
	// Fila anterior a que created_at/created_by existieran: ambos NULL.
	row := fakeRow{values: []any{"acme", "Acme", true, nil, nil}}

	got, err := scanTenant(row)
	require.NoError(t, err, "una fila legacy debe poder leerse")
	assert.Equal(t, "acme", got.ID)
	assert.True(t, got.IsActive)
	assert.True(t, got.CreatedAt.IsZero(), "created_at NULL mapea al valor cero (más antiguo)")
	assert.Empty(t, got.CreatedBy)
}

func TestScanTenant_FilaCompleta(t *testing.T) {
	createdAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	row := fakeRow{values: []any{"acme", "Acme", false, createdAt, "owner-1"}}

	got, err := scanTenant(row)
	require.NoError(t, err)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.Equal(t, "owner-1", got.CreatedBy)
	assert.False(t, got.IsActive)
}

func TestScanAppointment_ClientIDNulo(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	row := fakeRow{values: []any{
		"a1", "acme", "e1", []string{"s1"}, "Ana", "+34600000001",
		nil, // sin ficha de cliente
		start, start.Add(time.Hour), "confirmed", start,
	}}

	got, err := scanAppointment(row)
	require.NoError(t, err)
	assert.Empty(t, got.ClientID, "client_id NULL mapea a string vacío")
	assert.Equal(t, "Ana", got.ClientName)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""), "vacío se persiste como NULL")

	got := nullIfEmpty("c1")
	require.NotNil(t, got)
	assert.Equal(t, "c1", *got)
}
