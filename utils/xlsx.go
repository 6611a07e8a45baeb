package utils

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	models "github.com/jandvorak/donation-admin-go/models"
)

const exportSheet = "Dary"

// Column order and widths match the spreadsheet the accounting side already
// works with; do not reorder.
var exportHeaders = []any{
	"Variabilní symbol",
	"Částka",
	"Jméno",
	"Email",
	"Typ dárce",
	"Vzkaz",
	"Další informace",
	"Neuvádět dárce",
	"Čas odeslání",
}

var exportWidths = []float64{15, 25, 25, 30, 20, 45, 30, 15, 20}

// ExportFileName stamps the download name with the given date.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("Prehled_daru_%s.xlsx", now.Format("2006-01-02"))
}

// DonationsToExcel renders the given records into a one-sheet workbook, one
// row per donation. Records are expected to be normalized.
func DonationsToExcel(records []models.Donation) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	for i, width := range exportWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(exportSheet, col, col, width); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			rec.VariableSymbol,
			rec.AmountLabel(),
			rec.Name,
			rec.Email,
			rec.DonorTypeLabel(),
			rec.Note,
			rec.OtherDetails,
			yesNo(rec.NotPublic),
			formatCreatedAt(rec.CreatedAt),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func yesNo(b bool) string {
	if b {
		return "Ano"
	}
	return "Ne"
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2.1.2006 15:04:05")
}
