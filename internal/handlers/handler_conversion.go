package handlers

import (
	"net/http"
	"strconv"

	"github.com/craftkart/currency-engine/internal/core/domain"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/dto"
	"github.com/craftkart/currency-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler serves display conversions and cache status.
type conversionHandler struct {
	converter   portssvc.ConverterSvc
	preference  portssvc.PreferenceSvcFacade
	rates       portssvc.RateSource
	multipliers portssvc.MultiplierSource
}

func newConversionHandler(
	converter portssvc.ConverterSvc,
	preference portssvc.PreferenceSvcFacade,
	rates portssvc.RateSource,
	multipliers portssvc.MultiplierSource,
) *conversionHandler {
	return &conversionHandler{
		converter:   converter,
		preference:  preference,
		rates:       rates,
		multipliers: multipliers,
	}
}

// registerConversionRoutes registers the public conversion and status routes.
func registerConversionRoutes(
	rg *gin.RouterGroup,
	converter portssvc.ConverterSvc,
	preference portssvc.PreferenceSvcFacade,
	rates portssvc.RateSource,
	multipliers portssvc.MultiplierSource,
) {
	h := newConversionHandler(converter, preference, rates, multipliers)
	rg.GET("/convert", h.convert)
	rg.GET("/status", h.getStatus)
}

// convert godoc
// @Summary Convert an amount for display
// @Description Converts an amount between currencies. "from" defaults to the base currency; "to" defaults to the session's selected display currency.
// @Tags currency
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from query string false "Source currency code (defaults to base currency)"
// @Param   to query string false "Target currency code (defaults to the session preference)"
// @Param   X-Session-ID header string false "Storefront session identifier"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /currency/convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	amountStr := c.Query("amount")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'amount' must be a number"})
		return
	}

	from := domain.NormalizeCode(c.Query("from"))
	if from == "" {
		from = domain.BaseCurrency
	}

	to := domain.NormalizeCode(c.Query("to"))
	if to == "" {
		to = h.preference.Currency(c.Request.Context(), middleware.GetSessionID(c))
	}

	converted := h.converter.Convert(amount, from, to)

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Formatted: h.converter.Format(converted, to),
	})
}

// getStatus godoc
// @Summary Get conversion cache status
// @Description Reports the freshness of both cached tables and whether a refresh cycle is in flight
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.StatusResponse
// @Router /currency/status [get]
func (h *conversionHandler) getStatus(c *gin.Context) {
	rateSnap := h.rates.Rates()
	multSnap := h.multipliers.Multipliers()

	c.JSON(http.StatusOK, dto.StatusResponse{
		Refreshing:           h.preference.Refreshing(),
		RatesFetchedAt:       rateSnap.FetchedAt,
		RateCount:            len(rateSnap.Rates),
		MultipliersFetchedAt: multSnap.FetchedAt,
		MultiplierCount:      len(multSnap.Entries),
	})
}
