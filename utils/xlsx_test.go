package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	models "github.com/jandvorak/donation-admin-go/models"
)

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "Prehled_daru_2026-08-30.xlsx", ExportFileName(now))
}

func TestDonationsToExcel(t *testing.T) {
	first := models.Donation{
		Amount:         500,
		VariableSymbol: "20240001",
		Name:           "Jan Novák",
		Email:          "jan.novak@example.com",
		Note:           "Hodně štěstí",
		NotPublic:      true,
		Adress:         "Praha 1",
		CreatedAt:      time.Date(2026, 8, 30, 14, 30, 5, 0, time.UTC),
	}
	first.Normalize()
	second := models.Donation{
		Amount:         750,
		VariableSymbol: "20240002",
		ForCompany:     true,
		Price:          &models.Price{ID: "custom", PriceLabel: "Vlastní částka"},
	}
	second.Normalize()

	f, err := DonationsToExcel([]models.Donation{first, second})
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	read, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer read.Close()

	rows, err := read.GetRows("Dary")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, []string{
		"Variabilní symbol", "Částka", "Jméno", "Email", "Typ dárce",
		"Vzkaz", "Další informace", "Neuvádět dárce", "Čas odeslání",
	}, rows[0])

	require.Equal(t, "20240001", rows[1][0])
	require.Equal(t, "500 Kč", rows[1][1])
	require.Equal(t, "Jan Novák", rows[1][2])
	require.Equal(t, "Fyzická osoba", rows[1][4])
	require.Equal(t, "Praha 1", rows[1][6])
	require.Equal(t, "Ano", rows[1][7])
	require.Equal(t, "30.8.2026 14:30:05", rows[1][8])

	// custom price exports the raw amount, not the preset label
	require.Equal(t, "750 Kč", rows[2][1])
	require.Equal(t, "Firma", rows[2][4])
	require.Equal(t, "Ne", rows[2][7])
}
