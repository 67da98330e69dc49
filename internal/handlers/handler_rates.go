package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	portssvc "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/services"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/dto"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/middleware"
)

// defaultHistoryDays is used when the days query parameter is absent.
const defaultHistoryDays = 30

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService    portssvc.RateSvcFacade
	historyService portssvc.HistorySvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade, hs portssvc.HistorySvcFacade) *rateHandler {
	return &rateHandler{
		rateService:    rs,
		historyService: hs,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rs portssvc.RateSvcFacade, hs portssvc.HistorySvcFacade, rateLimit gin.HandlerFunc) {
	h := newRateHandler(rs, hs)

	rates := rg.Group("/rates", rateLimit)
	{
		rates.GET("/:base", h.getLatestRates)
		rates.GET("/:base/history/:target", h.getHistory)
	}
}

// getLatestRates godoc
// @Summary Get the latest exchange rates for a base currency
// @Description Returns the cached snapshot for the base currency, refreshing from the upstream provider when expired
// @Tags rates
// @Produce  json
// @Param   base path string true "Base Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} map[string]string "Invalid base currency"
// @Failure 503 {object} map[string]string "Upstream provider unavailable"
// @Router /rates/{base} [get]
func (h *rateHandler) getLatestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := c.Param("base")
	if base == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Base currency is required"})
		return
	}

	snapshot, err := h.rateService.GetLatestRates(c.Request.Context(), base)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrency) {
			logger.Warn("Invalid base currency for rates", slog.String("base", base))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			logger.Error("Upstream unavailable for rates", slog.String("base", base), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Rates are temporarily unavailable. Please try again later."})
		} else {
			logger.Error("Failed to get latest rates", slog.String("base", base), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(snapshot))
}

// getHistory godoc
// @Summary Get an N-day historical series for a currency pair
// @Description Returns the per-day rates for the pair, ascending by date; days whose upstream fetch failed are skipped and counted
// @Tags rates
// @Produce  json
// @Param   base   path  string true  "Base Currency Code (3 letters)"
// @Param   target path  string true  "Target Currency Code (3 letters)"
// @Param   days   query int    false "Number of days (default 30)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string "Invalid currency code or days"
// @Failure 503 {object} map[string]string "Upstream provider unavailable"
// @Router /rates/{base}/history/{target} [get]
func (h *rateHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := c.Param("base")
	target := c.Param("target")

	days := defaultHistoryDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = parsed
	}

	series, err := h.historyService.GetHistoricalSeries(c.Request.Context(), base, target, days)

	var partial *apperrors.PartialHistoryError
	if err != nil && !errors.As(err, &partial) {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrency), errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid history request", slog.String("base", base), slog.String("target", target), slog.Int("days", days))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			logger.Error("Upstream unavailable for history", slog.String("base", base), slog.String("target", target), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Historical rates are temporarily unavailable. Please try again later."})
		default:
			logger.Error("Failed to get historical series", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve historical rates"})
		}
		return
	}

	var failedDates []time.Time
	if partial != nil {
		failedDates = partial.FailedDates
		logger.Warn("Historical series assembled with gaps",
			slog.String("base", base),
			slog.String("target", target),
			slog.Int("skipped_days", len(failedDates)),
		)
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(series, failedDates))
}
