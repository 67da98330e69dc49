package services

import (
	portsprov "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/providers"
	portsrepo "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/repositories"
	portssvc "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/services"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/platform/config"

	"log/slog"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. archive may be nil when no database is
// configured.
func NewServiceContainer(
	cfg *config.Config,
	provider portsprov.RateProvider,
	archive portsrepo.TransactionArchiver,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Rates = NewRateCacheService(provider, cfg.RateCacheTTL, logger)
	container.History = NewHistoryService(provider, cfg.HistoryMaxDays, cfg.HistoryConcurrency, logger)
	container.Conversion = NewConversionService()

	ledgerOptions := []LedgerOption{WithLedgerLogger(logger)}
	if archive != nil {
		ledgerOptions = append(ledgerOptions, WithTransactionArchiver(archive))
	}
	container.Ledger = NewLedgerService(cfg.OpeningBalances, ledgerOptions...)

	container.Currency = NewCurrencyService()

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.RateSvcFacade       = (*RateCacheService)(nil)
	_ portssvc.HistorySvcFacade    = (*HistoryService)(nil)
	_ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
	_ portssvc.LedgerSvcFacade     = (*LedgerService)(nil)
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
)
