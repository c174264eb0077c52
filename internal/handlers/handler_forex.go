package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/forex_history_app/internal/apperrors"
	portssvc "github.com/SscSPs/forex_history_app/internal/core/ports/services"
	"github.com/SscSPs/forex_history_app/internal/dto"
	"github.com/SscSPs/forex_history_app/internal/middleware"
	"github.com/SscSPs/forex_history_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// Request defaults matching the historical API behavior.
const (
	defaultFromCurrency = "AED"
	defaultToCurrency   = "INR"
	defaultPeriod       = "1W"
	syncRangeDays       = 365
)

// forexHandler handles HTTP requests for forex history and sync.
type forexHandler struct {
	forexService   portssvc.ForexSvcFacade
	scraperService portssvc.ScraperSvcFacade
	cfg            *config.Config
}

// newForexHandler creates a new forexHandler.
func newForexHandler(fs portssvc.ForexSvcFacade, ss portssvc.ScraperSvcFacade, cfg *config.Config) *forexHandler {
	return &forexHandler{
		forexService:   fs,
		scraperService: ss,
		cfg:            cfg,
	}
}

// registerForexRoutes registers forex data and sync routes.
func registerForexRoutes(rg *gin.RouterGroup, fs portssvc.ForexSvcFacade, ss portssvc.ScraperSvcFacade, cfg *config.Config, syncLimiter gin.HandlerFunc) {
	h := newForexHandler(fs, ss, cfg)

	rg.POST("/forex-data", h.getForexData)
	rg.GET("/sync-forex-data", syncLimiter, h.syncForexData)
}

// getForexData returns the stored series for one pair over a period, plus a
// conversion of the requested amount at the latest close rate.
func (h *forexHandler) getForexData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.ForexDataRequest{
		From:   defaultFromCurrency,
		To:     defaultToCurrency,
		Period: defaultPeriod,
		Amount: 1.0,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for forex data request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Forex data request received",
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.String("period", req.Period),
	)

	resp, err := h.forexService.GetForexData(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No data available for the specified period and currency pair"})
		default:
			logger.Error("Failed to get forex data", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// syncForexData scrapes and persists one year of history for every configured
// pair and reports an outcome per (pair, period).
func (h *forexHandler) syncForexData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Starting forex data sync", slog.Int("pairs", len(h.cfg.SyncPairs)))

	pairs := make([]string, len(h.cfg.SyncPairs))
	for i, p := range h.cfg.SyncPairs {
		pairs[i] = p.SourceFormat()
	}

	end := time.Now()
	start := end.AddDate(0, 0, -syncRangeDays)

	results := h.scraperService.SyncPairs(c.Request.Context(), pairs, start.Unix(), end.Unix())

	logger.Info("Forex data sync completed")
	c.JSON(http.StatusOK, dto.SyncResponse{
		Message: "Sync completed",
		Results: results,
	})
}
