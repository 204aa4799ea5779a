package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-turf-booking/models"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	successStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printMessage(msg string) error {
	if a.output == outputJSON {
		return a.printJSON(models.MessageResponse{Message: msg})
	}
	_, err := fmt.Fprintln(a.out, successStyle.Render(msg))
	return err
}

func (a *App) printTurfs(turfs []models.Turf) error {
	if a.output == outputJSON {
		return a.printJSON(turfs)
	}
	if len(turfs) == 0 {
		_, err := fmt.Fprintln(a.out, faintStyle.Render("no turfs"))
		return err
	}

	rows := make([][]string, 0, len(turfs))
	for _, t := range turfs {
		rows = append(rows, []string{strconv.FormatInt(t.TurfID, 10), t.Name, t.Location, formatPrice(t.Price)})
	}
	return a.renderTable([]string{"ID", "NAME", "LOCATION", "PRICE"}, rows)
}

func (a *App) printBookings(bookings []models.Booking) error {
	if a.output == outputJSON {
		return a.printJSON(bookings)
	}
	if len(bookings) == 0 {
		_, err := fmt.Fprintln(a.out, faintStyle.Render("no bookings"))
		return err
	}

	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{b.ID, b.TurfName, b.Location, formatPrice(b.Price), b.Date, b.Time})
	}
	return a.renderTable([]string{"ID", "TURF", "LOCATION", "PRICE", "DATE", "TIME"}, rows)
}

func (a *App) renderTable(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(a.out, t.Render())
	return err
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
