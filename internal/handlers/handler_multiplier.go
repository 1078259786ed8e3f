package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/craftkart/currency-engine/internal/apperrors"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/dto"
	"github.com/craftkart/currency-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// multiplierHandler handles HTTP requests related to multiplier entries.
type multiplierHandler struct {
	multiplierService portssvc.MultiplierSvcFacade
	multiplierSource  portssvc.MultiplierSource
}

// newMultiplierHandler creates a new multiplierHandler.
func newMultiplierHandler(ms portssvc.MultiplierSvcFacade, src portssvc.MultiplierSource) *multiplierHandler {
	return &multiplierHandler{
		multiplierService: ms,
		multiplierSource:  src,
	}
}

// registerMultiplierRoutes registers the public multiplier-table route.
func registerMultiplierRoutes(rg *gin.RouterGroup, src portssvc.MultiplierSource) {
	h := newMultiplierHandler(nil, src)
	rg.GET("/multipliers", h.getMultiplierTable)
}

// registerMultiplierAdminRoutes registers the admin CRUD routes for
// multiplier entries.
func registerMultiplierAdminRoutes(rg *gin.RouterGroup, ms portssvc.MultiplierSvcFacade) {
	h := newMultiplierHandler(ms, nil)

	multipliers := rg.Group("/multipliers")
	{
		multipliers.POST("", h.createMultiplier)
		multipliers.GET("", h.listMultipliers)
		multipliers.GET("/:code", h.getMultiplierByCurrency)
		multipliers.PUT("/:code", h.updateMultiplier)
		multipliers.DELETE("/:code", h.deleteMultiplier)
	}
}

// getMultiplierTable godoc
// @Summary Get the multiplier table
// @Description Returns the cached, validated multiplier table keyed by currency code
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.MultiplierTableResponse
// @Router /currency/multipliers [get]
func (h *multiplierHandler) getMultiplierTable(c *gin.Context) {
	snap := h.multiplierSource.Multipliers()

	multipliers := make(map[string]dto.MultiplierValue, len(snap.Entries))
	for code, entry := range snap.Entries {
		value := dto.MultiplierValue{Multiplier: entry.Multiplier}
		if entry.RateToBase > 0 {
			rate := entry.RateToBase
			value.RateToInr = &rate
		}
		multipliers[code] = value
	}

	c.JSON(http.StatusOK, dto.MultiplierTableResponse{
		Multipliers: multipliers,
		FetchedAt:   snap.FetchedAt,
	})
}

// createMultiplier godoc
// @Summary Create a multiplier entry
// @Description Configures a pricing multiplier (and optional direct rate to INR) for a currency
// @Tags multipliers
// @Accept  json
// @Produce  json
// @Param   multiplier body dto.CreateMultiplierRequest true "Multiplier details"
// @Success 201 {object} dto.MultiplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Entry already exists"
// @Failure 500 {object} map[string]string "Failed to create multiplier"
// @Security BearerAuth
// @Router /admin/multipliers [post]
func (h *multiplierHandler) createMultiplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMultiplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMultiplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create multiplier", slog.String("currency_code", req.CurrencyCode))

	created, err := h.multiplierService.CreateMultiplier(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate multiplier", slog.String("currency_code", req.CurrencyCode))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Multiplier for '%s' already exists", req.CurrencyCode)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating multiplier", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create multiplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create multiplier"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMultiplierResponse(created))
}

// listMultipliers godoc
// @Summary List all multiplier entries
// @Description Retrieves every configured multiplier entry with audit fields
// @Tags multipliers
// @Produce  json
// @Success 200 {array} dto.MultiplierResponse
// @Failure 500 {object} map[string]string "Failed to list multipliers"
// @Security BearerAuth
// @Router /admin/multipliers [get]
func (h *multiplierHandler) listMultipliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.multiplierService.ListMultipliers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list multipliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list multipliers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMultiplierResponse(entries))
}

// getMultiplierByCurrency godoc
// @Summary Get a multiplier entry
// @Description Retrieves the multiplier entry for a currency
// @Tags multipliers
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.MultiplierResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve multiplier"
// @Security BearerAuth
// @Router /admin/multipliers/{code} [get]
func (h *multiplierHandler) getMultiplierByCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	entry, err := h.multiplierService.GetMultiplierByCurrency(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Multiplier entry not found"})
		} else {
			logger.Error("Failed to get multiplier from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve multiplier"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMultiplierResponse(entry))
}

// updateMultiplier godoc
// @Summary Update a multiplier entry
// @Description Replaces the values of the entry for a currency; omitting rateToInr clears the direct rate
// @Tags multipliers
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   multiplier body dto.UpdateMultiplierRequest true "New values"
// @Success 200 {object} dto.MultiplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update multiplier"
// @Security BearerAuth
// @Router /admin/multipliers/{code} [put]
func (h *multiplierHandler) updateMultiplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	var req dto.UpdateMultiplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMultiplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("updater_user_id", updaterUserID))
	logger.Info("Received request to update multiplier", slog.String("currency_code", currencyCode))

	updated, err := h.multiplierService.UpdateMultiplier(c.Request.Context(), currencyCode, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Multiplier entry not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating multiplier", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update multiplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update multiplier"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMultiplierResponse(updated))
}

// deleteMultiplier godoc
// @Summary Delete a multiplier entry
// @Description Removes the entry for a currency; that currency falls back to the generic table
// @Tags multipliers
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete multiplier"
// @Security BearerAuth
// @Router /admin/multipliers/{code} [delete]
func (h *multiplierHandler) deleteMultiplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if err := h.multiplierService.DeleteMultiplier(c.Request.Context(), currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Multiplier entry not found"})
		} else {
			logger.Error("Failed to delete multiplier in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete multiplier"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
