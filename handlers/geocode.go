package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"carebridge/cron"
	"carebridge/utils"
)

// GeocodeHandler enqueues background geocoding work.
type GeocodeHandler struct {
	Queue *asynq.Client
}

func NewGeocodeHandler(queue *asynq.Client) *GeocodeHandler {
	return &GeocodeHandler{Queue: queue}
}

// RunGeocodeMissing enqueues a batch run that fills in coordinates for all
// client addresses currently missing one. The worker serializes remote
// lookups, so repeated enqueues are safe.
func (h *GeocodeHandler) RunGeocodeMissing(c *gin.Context) {
	info, err := h.Queue.Enqueue(cron.NewGeocodeMissingTask())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to enqueue geocode run", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"taskId": info.ID, "queue": info.Queue})
}
