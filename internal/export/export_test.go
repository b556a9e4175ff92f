package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestRoster(t *testing.T) {
	got := Roster([]models.Attendee{
		{Name: "Asha", Email: "asha@example.com"},
		{Name: "Ravi", Email: "ravi@example.com"},
	})

	assert.Equal(t, "Asha <asha@example.com>\nRavi <ravi@example.com>\n", got)
	assert.Empty(t, Roster(nil))
}

func TestAttendeesXLSX(t *testing.T) {
	data, err := AttendeesXLSX(models.Event{Attendees: []models.Attendee{
		{Name: "Asha", Email: "asha@example.com"},
	}})
	require.NoError(t, err)

	rows := readRows(t, data, "Attendees")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#", "Name", "Email"}, rows[0])
	assert.Equal(t, []string{"1", "Asha", "asha@example.com"}, rows[1])
}

func TestCustomersXLSX(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 4, 5, 12, 0, 0, 0, time.UTC)
	created := time.Date(2026, 4, 1, 6, 30, 0, 0, time.UTC)

	data, err := CustomersXLSX([]models.Customer{
		{Name: "Asha", Phone: "9876543210", Email: "asha@example.com", CreatedAt: created, UpdatedAt: created},
	}, now, ist)
	require.NoError(t, err)

	rows := readRows(t, data, "Customers")
	require.Len(t, rows, 2)
	assert.Equal(t, "Recency", rows[0][3])
	assert.Equal(t, []string{"Asha", "9876543210", "asha@example.com", "new", "2026-04-01 12:00", "2026-04-01 12:00"}, rows[1])
}

func TestCustomersXLSX_EmptyHasHeaderOnly(t *testing.T) {
	data, err := CustomersXLSX(nil, time.Now(), time.UTC)
	require.NoError(t, err)

	rows := readRows(t, data, "Customers")
	assert.Len(t, rows, 1)
}
