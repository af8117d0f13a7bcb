package usecase

import (
	"context"
	"time"

	"BayPortal/internal/domain/models"
	"BayPortal/internal/service/backend"
	xlogger "BayPortal/pkg/logger"
	"BayPortal/pkg/metrics"
)

// FinancialStatusUseCase fetches the portfolio snapshot. A single branch,
// same degradation contract: on failure the view renders its empty state and
// the snapshot stays nil.
type FinancialStatusUseCase struct {
	backend *backend.Client
	logger  *xlogger.Logger
	metrics *metrics.Recorder
	timeout time.Duration
}

func NewFinancialStatusUseCase(b *backend.Client, l *xlogger.Logger, m *metrics.Recorder) *FinancialStatusUseCase {
	return &FinancialStatusUseCase{backend: b, logger: l, metrics: m, timeout: 10 * time.Second}
}

// Fetch never fails; a backend error degrades to a nil snapshot.
func (uc *FinancialStatusUseCase) Fetch(ctx context.Context) *models.FinancialStatus {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res := &models.FinancialStatus{}

	snap, err := uc.backend.PortfolioSummary(ctx)
	if err != nil {
		uc.logger.Warn("portfolio summary fetch failed", xlogger.Error(err))
		res.Degraded = append(res.Degraded, models.SectionPortfolio)
		if uc.metrics != nil {
			uc.metrics.RecordDegradedView("financial-status")
		}
		return res
	}

	res.Snapshot = snap
	return res
}
