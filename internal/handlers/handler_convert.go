package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	portssvc "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/services"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/dto"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/middleware"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/utils"
)

// convertHandler handles HTTP requests for currency conversion. It composes
// the rate cache with the pure conversion engine: whatever snapshot the
// cache currently holds for the source currency is the one converted
// against.
type convertHandler struct {
	rateService       portssvc.RateSvcFacade
	conversionService portssvc.ConversionSvcFacade
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(rs portssvc.RateSvcFacade, cs portssvc.ConversionSvcFacade) *convertHandler {
	return &convertHandler{
		rateService:       rs,
		conversionService: cs,
	}
}

// registerConvertRoutes registers the conversion route.
func registerConvertRoutes(rg *gin.RouterGroup, rs portssvc.RateSvcFacade, cs portssvc.ConversionSvcFacade) {
	h := newConvertHandler(rs, cs)
	rg.POST("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between two currencies
// @Description Converts using the current cached snapshot for the source currency
// @Tags convert
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No rate for the target currency"
// @Failure 503 {object} map[string]string "Upstream provider unavailable"
// @Router /convert [post]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a finite number"})
		return
	}

	snapshot, err := h.rateService.GetLatestRates(c.Request.Context(), req.From)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			logger.Error("Upstream unavailable for convert", slog.String("from", req.From), slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Rates are temporarily unavailable. Please try again later."})
		} else {
			logger.Error("Failed to get rates for convert", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	amount := decimal.NewFromFloat(req.Amount)
	converted, err := h.conversionService.Convert(amount, req.From, req.To, snapshot)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidCurrency):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateNotFound):
			// Explicit so the UI can show its placeholder instead of a
			// silent zero.
			logger.Warn("Rate not found for convert", slog.String("from", req.From), slog.String("to", req.To))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	rate, _ := snapshot.Rate(req.To)
	c.JSON(http.StatusOK, dto.ConvertResponse{
		From:            snapshot.BaseCurrency,
		To:              req.To,
		Amount:          req.Amount,
		Rate:            rate,
		ConvertedAmount: converted,
		Formatted:       utils.FormatAmount(converted),
	})
}
