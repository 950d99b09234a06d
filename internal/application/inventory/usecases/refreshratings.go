package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/integrations"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

const (
	// Ratings older than a week are considered stale.
	ratingMaxAgeHours = 7 * 24
	ratingBatchSize   = 25
)

// RefreshRatingsUseCase pulls fresh authority metrics for the domains
// whose rating has gone stale. It runs from the scheduler, not from a
// request path, so a provider failure on one domain only skips that
// domain.
type RefreshRatingsUseCase struct {
	domainRepo inventory.Repository
	provider   integrations.RatingProvider
	logger     logger.Interface
}

func NewRefreshRatingsUseCase(
	domainRepo inventory.Repository,
	provider integrations.RatingProvider,
	logger logger.Interface,
) *RefreshRatingsUseCase {
	return &RefreshRatingsUseCase{
		domainRepo: domainRepo,
		provider:   provider,
		logger:     logger,
	}
}

// RefreshStaleRatings refreshes one batch and returns how many domains
// were updated.
func (uc *RefreshRatingsUseCase) RefreshStaleRatings(ctx context.Context) (int, error) {
	if uc.provider == nil || !uc.provider.Enabled() {
		uc.logger.Debugw("rating provider disabled, skipping refresh")
		return 0, nil
	}

	stale, err := uc.domainRepo.ListStaleRatings(ctx, ratingMaxAgeHours, ratingBatchSize)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, d := range stale {
		metrics, err := uc.provider.FetchMetrics(ctx, d.Name())
		if err != nil {
			uc.logger.Warnw("failed to fetch domain metrics",
				"domain", d.Name(), "error", err)
			continue
		}
		if err := d.RefreshRating(metrics.DomainRating, metrics.MonthlyTraffic); err != nil {
			uc.logger.Warnw("rejected domain metrics",
				"domain", d.Name(), "rating", metrics.DomainRating, "error", err)
			continue
		}
		if err := uc.domainRepo.Update(ctx, d); err != nil {
			uc.logger.Errorw("failed to store refreshed rating",
				"domain_id", d.ID(), "error", err)
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		uc.logger.Infow("domain ratings refreshed", "count", refreshed, "stale", len(stale))
	}
	return refreshed, nil
}
