package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	liststate "github.com/jandvorak/donation-admin-go/liststate"
	models "github.com/jandvorak/donation-admin-go/models"
	store "github.com/jandvorak/donation-admin-go/store"
	table "github.com/jandvorak/donation-admin-go/table"
	utils "github.com/jandvorak/donation-admin-go/utils"
)

// Fixed alert strings shown to the admin on mutation failures.
const (
	msgStatusFailed = "Nepodařilo se změnit status. Zkuste to prosím znovu."
	msgDeleteFailed = "Nepodařilo se smazat záznam."
)

func statusLabel(status string) string {
	switch status {
	case models.StatusPaid:
		return "potvrzeno"
	case models.StatusCancelled:
		return "odmítnuto"
	default:
		return "nepotvrzeno"
	}
}

var donationColumns = []table.Column[models.Donation]{
	{Header: "Dar", Cell: func(d models.Donation) string { return d.AmountLabel() }},
	{Header: "Variabilní symbol", Cell: func(d models.Donation) string { return d.VariableSymbol }},
	{Header: "Jméno", Cell: func(d models.Donation) string {
		if d.IsAnonymous {
			return ""
		}
		return d.Name
	}},
	{Header: "Status", Cell: func(d models.Donation) string { return statusLabel(d.Status) }},
	{Header: "Email", Cell: func(d models.Donation) string {
		if d.IsAnonymous {
			return ""
		}
		return d.Email
	}},
	{Header: "Vzkaz", Cell: func(d models.Donation) string { return d.Note }},
	{Header: "Další informace", Cell: func(d models.Donation) string { return d.OtherDetails }},
	{Header: "Neuvádět", Cell: func(d models.Donation) string {
		if d.NotPublic {
			return "Ano"
		}
		return "Ne"
	}},
}

func queryPage(c *gin.Context, name string) int {
	page, err := strconv.Atoi(c.DefaultQuery(name, "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func donationFilter(c *gin.Context) liststate.Filter {
	return liststate.Filter{
		Search:    c.Query("q"),
		DonorType: c.DefaultQuery("type", models.DonorAll),
	}
}

// ---------------- LIST ----------------
func ListDonations(d *liststate.Donations) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d.Loading() {
			c.JSON(http.StatusOK, gin.H{"loading": true})
			return
		}

		etag := utils.GenerateETag(store.CollectionDonations, d.Version())
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		pending, paid, cancelled := liststate.Buckets(d.Filtered(donationFilter(c)))

		c.JSON(http.StatusOK, gin.H{
			"loading":   false,
			"pending":   table.Render("K vyřešení", pending, donationColumns, queryPage(c, "page_pending"), liststate.PageSize),
			"paid":      table.Render("Přehled darů", paid, donationColumns, queryPage(c, "page_paid"), liststate.PageSize),
			"cancelled": table.Render("Odmítnuté - nepřišli", cancelled, donationColumns, queryPage(c, "page_cancelled"), liststate.PageSize),
		})
	}
}

// ---------------- UPDATE STATUS ----------------
func UpdateDonationStatus(d *liststate.Donations) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidStatus(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := d.SetStatus(ctx, c.Param("id"), input.Status); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgStatusFailed})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": input.Status})
	}
}

// ---------------- DELETE ----------------
func DeleteDonation(d *liststate.Donations) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := d.Delete(ctx, c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgDeleteFailed})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "message": "donation deleted"})
	}
}

// ---------------- EXPORT ----------------
func ExportDonations(d *liststate.Donations) gin.HandlerFunc {
	return func(c *gin.Context) {
		records := d.Filtered(donationFilter(c))

		if status := c.Query("status"); status != "" {
			if !models.ValidStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
				return
			}
			pending, paid, cancelled := liststate.Buckets(records)
			switch status {
			case models.StatusPaid:
				records = paid
			case models.StatusCancelled:
				records = cancelled
			default:
				records = pending
			}
		}

		f, err := utils.DonationsToExcel(records)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build export"})
			return
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build export"})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+utils.ExportFileName(time.Now())+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

// ---------------- RELOAD ----------------
func ReloadDonations(d *liststate.Donations) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		d.Load(ctx)
		c.JSON(http.StatusOK, gin.H{"count": d.Count()})
	}
}
