package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/craftkart/currency-engine/internal/apperrors"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/dto"
	"github.com/craftkart/currency-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler serves the session display-currency preference.
type preferenceHandler struct {
	preference portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(p portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{preference: p}
}

// registerPreferenceRoutes registers the session preference routes.
func registerPreferenceRoutes(rg *gin.RouterGroup, preference portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(preference)
	rg.GET("/preference", h.getPreference)
	rg.PUT("/preference", h.setPreference)
}

// getPreference godoc
// @Summary Get the session display currency
// @Description Returns the session's selected display currency, defaulting to the base currency
// @Tags currency
// @Produce  json
// @Param   X-Session-ID header string false "Storefront session identifier"
// @Success 200 {object} dto.PreferenceResponse
// @Router /currency/preference [get]
func (h *preferenceHandler) getPreference(c *gin.Context) {
	code := h.preference.Currency(c.Request.Context(), middleware.GetSessionID(c))
	c.JSON(http.StatusOK, dto.PreferenceResponse{CurrencyCode: code})
}

// setPreference godoc
// @Summary Set the session display currency
// @Description Persists the session's selected display currency. Does not trigger a rate refresh.
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   X-Session-ID header string true "Storefront session identifier"
// @Param   preference body dto.SetPreferenceRequest true "Selected currency"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Router /currency/preference [put]
func (h *preferenceHandler) setPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header is required"})
		return
	}

	var req dto.SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.preference.SetCurrency(c.Request.Context(), sessionID, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting preference", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save preference", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PreferenceResponse{
		CurrencyCode: h.preference.Currency(c.Request.Context(), sessionID),
	})
}
