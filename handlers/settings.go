package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carebridge/models"
	"carebridge/services/settings"
	"carebridge/utils"
)

// SettingsHandler exposes the administrator-mutable engine settings.
type SettingsHandler struct {
	Settings *settings.Service
}

func NewSettingsHandler(svc *settings.Service) *SettingsHandler {
	return &SettingsHandler{Settings: svc}
}

// GetServiceRadius returns the current active service radius.
func (h *SettingsHandler) GetServiceRadius(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"activeRadiusKm": h.Settings.ActiveRadiusKm(c.Request.Context()),
	})
}

// SetServiceRadius clamps, snaps and stores the active service radius.
func (h *SettingsHandler) SetServiceRadius(c *gin.Context) {
	var input struct {
		RadiusKm int `json:"radiusKm" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	applied, err := h.Settings.SetActiveRadiusKm(c.Request.Context(), input.RadiusKm)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store service radius", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeRadiusKm": applied})
}

// GetRushPolicy returns the current ASAP pricing policy.
func (h *SettingsHandler) GetRushPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.RushPolicy(c.Request.Context()))
}

// SetRushPolicy validates and stores the ASAP pricing policy.
func (h *SettingsHandler) SetRushPolicy(c *gin.Context) {
	var policy models.RushPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Settings.SetRushPolicy(c.Request.Context(), policy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, policy)
}
