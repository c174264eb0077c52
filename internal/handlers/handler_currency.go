package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/forex_history_app/internal/core/ports/services"
	"github.com/SscSPs/forex_history_app/internal/dto"
	"github.com/SscSPs/forex_history_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to supported currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(cs)
	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies returns all supported currencies.
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	resp := dto.ListCurrenciesResponse{Currencies: make([]dto.CurrencyResponse, len(currencies))}
	for i, currency := range currencies {
		resp.Currencies[i] = dto.ToCurrencyResponse(currency)
	}
	c.JSON(http.StatusOK, resp)
}
