// Package export renders customer and attendee lists as text or xlsx workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout      = "2006-01-02 15:04"
)

// Roster lists attendees one per line as "Name <email>".
func Roster(attendees []models.Attendee) string {
	var b strings.Builder
	for _, a := range attendees {
		fmt.Fprintf(&b, "%s <%s>\n", a.Name, a.Email)
	}
	return b.String()
}

func AttendeesXLSX(e models.Event) ([]byte, error) {
	rows := make([][]any, len(e.Attendees))
	for i, a := range e.Attendees {
		rows[i] = []any{i + 1, a.Name, a.Email}
	}
	return workbook("Attendees", []any{"#", "Name", "Email"}, rows)
}

// CustomersXLSX writes one row per customer with timestamps shown in loc.
func CustomersXLSX(customers []models.Customer, now time.Time, loc *time.Location) ([]byte, error) {
	rows := make([][]any, len(customers))
	for i, c := range customers {
		rows[i] = []any{
			c.Name,
			c.Phone,
			c.Email,
			string(c.RecencyAt(now)),
			formatTime(c.CreatedAt, loc),
			formatTime(c.UpdatedAt, loc),
		}
	}
	return workbook("Customers", []any{"Name", "Phone", "Email", "Recency", "Created", "Updated"}, rows)
}

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(dateLayout)
}

func workbook(sheet string, header []any, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
