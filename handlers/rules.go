package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	rulesRepo "carebridge/database/repository/rules"
	"carebridge/models"
	"carebridge/utils"
)

// RulesHandler exposes administrator CRUD over surge rules.
type RulesHandler struct {
	Repo rulesRepo.SurgeRuleRepository
}

func NewRulesHandler(repo rulesRepo.SurgeRuleRepository) *RulesHandler {
	return &RulesHandler{Repo: repo}
}

// ListRules returns every configured surge rule.
func (h *RulesHandler) ListRules(c *gin.Context) {
	rules, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list surge rules", err.Error())
		return
	}
	if rules == nil {
		rules = []models.SurgeRule{}
	}
	c.JSON(http.StatusOK, rules)
}

// GetRule returns one surge rule by ID.
func (h *RulesHandler) GetRule(c *gin.Context) {
	rule, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "surge rule not found"})
		return
	}
	c.JSON(http.StatusOK, rule)
}

// CreateRule validates and stores a new surge rule.
func (h *RulesHandler) CreateRule(c *gin.Context) {
	var rule models.SurgeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), rule)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRule) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create surge rule", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateRule validates and replaces an existing surge rule.
func (h *RulesHandler) UpdateRule(c *gin.Context) {
	var rule models.SurgeRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	rule.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), rule); err != nil {
		if errors.Is(err, models.ErrInvalidRule) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update surge rule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": rule.ID})
}

// DeleteRule removes a surge rule.
func (h *RulesHandler) DeleteRule(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
