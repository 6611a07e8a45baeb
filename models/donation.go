package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses. Stored as plain strings; documents written before the
// status field existed default to pending on ingest.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Donor type filter values.
const (
	DonorAll       = "all"
	DonorCompany   = "company"
	DonorAnonymous = "anonymous"
	DonorPerson    = "person"
)

// Price is the preset the donor picked in the donation form. ID "custom"
// means a free-typed amount: Amount, not PriceLabel, is what gets displayed.
type Price struct {
	ID         string `bson:"id,omitempty" json:"id,omitempty"`
	PriceLabel string `bson:"priceLabel,omitempty" json:"priceLabel,omitempty"`
	TitleColor string `bson:"titleColor,omitempty" json:"titleColor,omitempty"`
}

type Donation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount         int                `bson:"amount" json:"amount"`
	VariableSymbol string             `bson:"variable_symbol" json:"variable_symbol"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Note           string             `bson:"note,omitempty" json:"note,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status"`
	IsAnonymous    bool               `bson:"is_anonymous" json:"is_anonymous"`
	ForCompany     bool               `bson:"for_company" json:"for_company"`
	NotPublic      bool               `bson:"not_public" json:"not_public"`
	Price          *Price             `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`

	// Disclosure fields, read only to build OtherDetails.
	Adress    string `bson:"adress,omitempty" json:"-"`
	Birthdate string `bson:"birthdate,omitempty" json:"-"`
	ICO       string `bson:"ico,omitempty" json:"-"`

	// Derived at ingest, never stored.
	OtherDetails string `bson:"-" json:"other_details"`
}

// Normalize fills the defaults older documents miss and computes the derived
// display fields. Runs once per record right after fetch, so render and
// export paths can rely on Status and Price being set.
func (d *Donation) Normalize() {
	if d.Status == "" {
		d.Status = StatusPending
	}
	if d.Price == nil {
		d.Price = &Price{PriceLabel: fmt.Sprintf("%d Kč", d.Amount)}
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Adress, d.Birthdate, d.ICO} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	d.OtherDetails = strings.Join(parts, ", ")
}

// AmountLabel is the value shown in the amount column of the table and the
// export: the raw amount for custom donations, the preset label otherwise.
func (d *Donation) AmountLabel() string {
	if d.Price == nil || d.Price.ID == "custom" {
		return fmt.Sprintf("%d Kč", d.Amount)
	}
	return d.Price.PriceLabel
}

// DonorTypeLabel returns the label the export shows. Anonymous wins over
// company when both flags are set.
func (d *Donation) DonorTypeLabel() string {
	switch {
	case d.IsAnonymous:
		return "Anonymní dárce"
	case d.ForCompany:
		return "Firma"
	default:
		return "Fyzická osoba"
	}
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}
