package controllers

import (
	"context"
	"net/http"

	"univo/db"

	"github.com/gin-gonic/gin"
)

// HealthController exposes a store round-trip check.
type HealthController struct {
	store *db.Store
}

func NewHealthController(store *db.Store) *HealthController {
	return &HealthController{store: store}
}

// TestConnection pings the backing store.
func (hc *HealthController) TestConnection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := hc.store.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
