package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	d := Donation{Amount: 500}
	d.Normalize()

	require.Equal(t, StatusPending, d.Status)
	require.NotNil(t, d.Price)
	require.Equal(t, "500 Kč", d.Price.PriceLabel)
}

func TestNormalizeKeepsExistingValues(t *testing.T) {
	d := Donation{
		Amount: 1000,
		Status: StatusPaid,
		Price:  &Price{ID: "gold", PriceLabel: "Zlatý dar"},
	}
	d.Normalize()

	require.Equal(t, StatusPaid, d.Status)
	require.Equal(t, "Zlatý dar", d.Price.PriceLabel)
}

func TestNormalizeOtherDetails(t *testing.T) {
	d := Donation{Adress: "Praha 1", Birthdate: "1.1.1990", ICO: "12345678"}
	d.Normalize()
	require.Equal(t, "Praha 1, 1.1.1990, 12345678", d.OtherDetails)

	d = Donation{Birthdate: "1.1.1990"}
	d.Normalize()
	require.Equal(t, "1.1.1990", d.OtherDetails)

	d = Donation{Adress: "Brno", ICO: "87654321"}
	d.Normalize()
	require.Equal(t, "Brno, 87654321", d.OtherDetails)

	d = Donation{}
	d.Normalize()
	require.Equal(t, "", d.OtherDetails)
}

func TestAmountLabel(t *testing.T) {
	d := Donation{Amount: 750, Price: &Price{ID: "custom", PriceLabel: "Vlastní částka"}}
	require.Equal(t, "750 Kč", d.AmountLabel())

	d = Donation{Amount: 300, Price: &Price{ID: "bronze", PriceLabel: "300 Kč měsíčně"}}
	require.Equal(t, "300 Kč měsíčně", d.AmountLabel())

	d = Donation{Amount: 500}
	d.Normalize()
	require.Equal(t, "500 Kč", d.AmountLabel())
}

func TestDonorTypeLabel(t *testing.T) {
	require.Equal(t, "Fyzická osoba", (&Donation{}).DonorTypeLabel())
	require.Equal(t, "Firma", (&Donation{ForCompany: true}).DonorTypeLabel())
	require.Equal(t, "Anonymní dárce", (&Donation{IsAnonymous: true}).DonorTypeLabel())
	// anonymous wins when both flags are set
	require.Equal(t, "Anonymní dárce", (&Donation{IsAnonymous: true, ForCompany: true}).DonorTypeLabel())
}

func TestValidStatus(t *testing.T) {
	require.True(t, ValidStatus(StatusPending))
	require.True(t, ValidStatus(StatusPaid))
	require.True(t, ValidStatus(StatusCancelled))
	require.False(t, ValidStatus(""))
	require.False(t, ValidStatus("refunded"))
}
