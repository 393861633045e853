package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	unservedRepo "carebridge/database/repository/unserved"
	"carebridge/models"
	"carebridge/services/coverage"
	"carebridge/services/geo"
	"carebridge/utils"
)

// CoverageHandler exposes the service-area check.
type CoverageHandler struct {
	Service  coverage.CoverageService
	Unserved unservedRepo.UnservedRequestRepository
	Logger   *zap.Logger
}

func NewCoverageHandler(service coverage.CoverageService, unserved unservedRepo.UnservedRequestRepository, logger *zap.Logger) *CoverageHandler {
	return &CoverageHandler{Service: service, Unserved: unserved, Logger: logger}
}

// CheckCoverage determines whether a client location is serviceable.
// Accepts either ?postal= / ?city= or explicit ?lat=&lng= coordinates.
// Unserved requests are recorded for expansion planning.
func (h *CoverageHandler) CheckCoverage(c *gin.Context) {
	q := coverage.Query{
		PostalCode: c.Query("postal"),
		Freeform:   c.Query("city"),
	}
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lng"})
			return
		}
		q.Coordinate = &models.Coordinate{Latitude: lat, Longitude: lng}
	}
	if q.Coordinate == nil && q.PostalCode == "" && q.Freeform == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide postal, city or lat/lng"})
		return
	}

	result, err := h.Service.CheckCoverage(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check coverage", err.Error())
		return
	}

	if !result.WithinCoverage {
		record := models.UnservedRequest{
			City:           q.Freeform,
			FSA:            geo.NormalizeFSA(q.PostalCode),
			ProvidersFound: result.ProvidersFound,
			Reason:         result.Reason,
		}
		if err := h.Unserved.Record(c.Request.Context(), record); err != nil {
			h.Logger.Warn("failed to record unserved request", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}
