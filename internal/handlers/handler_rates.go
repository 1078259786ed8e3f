package handlers

import (
	"net/http"

	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/dto"
	"github.com/gin-gonic/gin"
)

// rateHandler serves the cached generic exchange-rate table.
type rateHandler struct {
	rates portssvc.RateSource
}

func newRateHandler(rates portssvc.RateSource) *rateHandler {
	return &rateHandler{rates: rates}
}

// registerRateRoutes registers the public rate-table route.
func registerRateRoutes(rg *gin.RouterGroup, rates portssvc.RateSource) {
	h := newRateHandler(rates)
	rg.GET("/rates", h.getRates)
}

// getRates godoc
// @Summary Get the exchange-rate table
// @Description Returns the cached generic exchange-rate table, keyed by currency code, as units per 1 unit of the base currency
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Router /currency/rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	snap := h.rates.Rates()

	rates := make(map[string]float64, len(snap.Rates))
	for code, rate := range snap.Rates {
		rates[code] = rate
	}

	c.JSON(http.StatusOK, dto.RateTableResponse{
		Rates:     rates,
		FetchedAt: snap.FetchedAt,
	})
}
