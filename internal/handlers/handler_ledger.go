package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	portssvc "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/services"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/dto"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for the multi-currency balance ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the balance ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ls)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/fund", h.fund)
		ledger.POST("/withdraw", h.withdraw)
		ledger.GET("/balances", h.getBalances)
		ledger.GET("/transactions", h.listTransactions)
	}
}

// fund godoc
// @Summary Fund a currency balance
// @Description Credits the given amount to the currency's balance and records a transaction
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   funding body dto.LedgerMutationRequest true "Funding details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or currency"
// @Router /ledger/fund [post]
func (h *ledgerHandler) fund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LedgerMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for fund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.Credit(c.Request.Context(), req.Currency, decimal.NewFromFloat(req.Amount))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) || errors.Is(err, apperrors.ErrInvalidCurrency) {
			logger.Warn("Validation error funding balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to fund balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fund balance"})
		}
		return
	}

	logger.Info("Balance funded", slog.String("transaction_id", txn.TransactionID), slog.String("currency", txn.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// withdraw godoc
// @Summary Withdraw from a currency balance
// @Description Debits the given amount from the currency's balance and records a transaction
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   withdrawal body dto.LedgerMutationRequest true "Withdrawal details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or currency"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Router /ledger/withdraw [post]
func (h *ledgerHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LedgerMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.Debit(c.Request.Context(), req.Currency, decimal.NewFromFloat(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Insufficient funds for withdrawal", slog.String("currency", req.Currency))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidCurrency):
			logger.Warn("Validation error withdrawing", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to withdraw", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw"})
		}
		return
	}

	logger.Info("Balance withdrawn", slog.String("transaction_id", txn.TransactionID), slog.String("currency", txn.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getBalances godoc
// @Summary Get all currency balances
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.BalancesResponse
// @Router /ledger/balances [get]
func (h *ledgerHandler) getBalances(c *gin.Context) {
	balances, err := h.ledgerService.Balances(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balances"})
		return
	}
	c.JSON(http.StatusOK, dto.BalancesResponse{Balances: balances})
}

// listTransactions godoc
// @Summary List ledger transactions, newest first
// @Tags ledger
// @Produce  json
// @Param   limit query int false "Maximum number of transactions (default 50)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Router /ledger/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), limit)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(transactions))
}
