package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/forex_history_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_history_app/internal/core/ports/services"
	"github.com/SscSPs/forex_history_app/internal/core/ports/sources"
	"github.com/SscSPs/forex_history_app/internal/platform/config"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(
	repos *portsrepo.RepositoryProvider,
	source sources.RateSource,
	parser sources.RateParser,
	cfg *config.Config,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Scraper: NewScraperService(
			source,
			parser,
			repos.ExchangeRateRepo,
			cfg.SupportedPeriods,
			WithPairWorkers(cfg.MaxPairWorkers),
			WithChunkWorkers(cfg.MaxChunkWorkers),
			WithScraperLogger(logger),
		),
		Forex:    NewForexService(repos.ExchangeRateRepo, logger),
		Currency: NewCurrencyService(repos.CurrencyRepo, logger),
	}
}

// Compile-time interface implementation checks.
var (
	_ portssvc.ScraperSvcFacade  = (*ScraperService)(nil)
	_ portssvc.ForexSvcFacade    = (*ForexService)(nil)
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
)
