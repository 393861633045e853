package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carebridge/services/pricing"
	"carebridge/utils"
)

// PricingHandler exposes the rate-quoting and overtime calculations.
type PricingHandler struct {
	Service pricing.PricingService
}

func NewPricingHandler(service pricing.PricingService) *PricingHandler {
	return &PricingHandler{Service: service}
}

// QuoteRate prices a booking request: base rate times the surge and rush
// multiplier chain at the requested start time.
func (h *PricingHandler) QuoteRate(c *gin.Context) {
	var input struct {
		BaseRate       float64   `json:"baseRate" binding:"required,gt=0"`
		RequestedStart time.Time `json:"requestedStart" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := h.Service.QuoteRate(c.Request.Context(), input.BaseRate, input.RequestedStart, time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to quote rate", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// PreviewOvertime runs the overtime calculation without charging anyone.
func (h *PricingHandler) PreviewOvertime(c *gin.Context) {
	var input struct {
		OvertimeMinutes int     `json:"overtimeMinutes" binding:"min=0"`
		HourlyRate      float64 `json:"hourlyRate" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	billable, charge := pricing.ComputeOvertimeCharge(input.OvertimeMinutes, input.HourlyRate)
	c.JSON(http.StatusOK, gin.H{
		"billableMinutes": billable,
		"chargeAmount":    charge,
	})
}
