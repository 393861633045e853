package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carebridge/models"
	"carebridge/services/billing"
	"carebridge/utils"
)

// BillingHandler exposes overtime settlement.
type BillingHandler struct {
	Overtime *billing.OvertimeBillingService
}

func NewBillingHandler(overtime *billing.OvertimeBillingService) *BillingHandler {
	return &BillingHandler{Overtime: overtime}
}

// SettleOvertime assesses and captures the overtime charge for a completed
// shift. A failed capture returns the assessment with Charged=false so the
// caller can see the computed amounts without the shift being marked paid.
func (h *BillingHandler) SettleOvertime(c *gin.Context) {
	var shift models.ShiftCompletion
	if err := c.ShouldBindJSON(&shift); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	assessment, err := h.Overtime.SettleOvertime(c.Request.Context(), shift)
	if err != nil {
		if errors.Is(err, billing.ErrChargeFailed) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":      "overtime charge was not applied",
				"details":    err.Error(),
				"assessment": assessment,
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to settle overtime", err.Error())
		return
	}
	c.JSON(http.StatusOK, assessment)
}
