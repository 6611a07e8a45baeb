package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	liststate "github.com/jandvorak/donation-admin-go/liststate"
	models "github.com/jandvorak/donation-admin-go/models"
	store "github.com/jandvorak/donation-admin-go/store"
	table "github.com/jandvorak/donation-admin-go/table"
	utils "github.com/jandvorak/donation-admin-go/utils"
)

const (
	msgInvalidEmail    = "Prosím zadejte platný email."
	msgSaveEmailFailed = "Nepodařilo se uložit email."
)

var notificationColumns = []table.Column[models.Notification]{
	{Header: "Email", Cell: func(n models.Notification) string { return n.Email }},
}

// ---------------- LIST ----------------
func ListNotifications(n *liststate.Notifications) gin.HandlerFunc {
	return func(c *gin.Context) {
		if n.Loading() {
			c.JSON(http.StatusOK, gin.H{"loading": true})
			return
		}

		etag := utils.GenerateETag(store.CollectionNotifications, n.Version())
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, gin.H{
			"loading": false,
			"table":   table.Render("Notifikace", n.All(), notificationColumns, queryPage(c, "page"), liststate.PageSize),
		})
	}
}

// ---------------- CREATE ----------------
func CreateNotification(n *liststate.Notifications) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidEmail})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		rec, err := n.Add(ctx, input.Email)
		if err != nil {
			if errors.Is(err, liststate.ErrInvalidEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidEmail})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgSaveEmailFailed})
			return
		}

		c.JSON(http.StatusCreated, rec)
	}
}

// ---------------- DELETE ----------------
func DeleteNotification(n *liststate.Notifications) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := n.Delete(ctx, c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgDeleteFailed})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "message": "notification deleted"})
	}
}

// ---------------- RELOAD ----------------
func ReloadNotifications(n *liststate.Notifications) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		n.Load(ctx)
		c.JSON(http.StatusOK, gin.H{"count": n.Count()})
	}
}
