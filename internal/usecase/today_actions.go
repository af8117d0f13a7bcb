package usecase

import (
	"context"
	"fmt"
	"time"

	"BayPortal/internal/domain/models"
	"BayPortal/internal/service/backend"
	"BayPortal/pkg/cache"
	xlogger "BayPortal/pkg/logger"
	"BayPortal/pkg/metrics"
)

// TodayActionsUseCase fetches the per-city action items. The backend's
// ttlSeconds hint is honored: a fetched payload is cached and served until
// the TTL lapses. Cache errors are never fatal; they degrade to a direct
// fetch, and a failed fetch degrades to an empty item list.
type TodayActionsUseCase struct {
	backend    *backend.Client
	cache      cache.Service
	logger     *xlogger.Logger
	metrics    *metrics.Recorder
	timeout    time.Duration
	defaultTTL time.Duration
}

func NewTodayActionsUseCase(b *backend.Client, cs cache.Service, l *xlogger.Logger, m *metrics.Recorder, defaultTTL time.Duration) *TodayActionsUseCase {
	return &TodayActionsUseCase{
		backend:    b,
		cache:      cs,
		logger:     l,
		metrics:    m,
		timeout:    10 * time.Second,
		defaultTTL: defaultTTL,
	}
}

func (uc *TodayActionsUseCase) Fetch(ctx context.Context, city string) (*models.TodayActionsResult, error) {
	if city == "" {
		return nil, fmt.Errorf("city required")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res := &models.TodayActionsResult{City: city}
	key := cache.GenerateKeyWithParams("views:actions", city)

	if uc.cache != nil {
		var cached models.TodayActions
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			res.Actions = &cached
			res.Cached = true
			if uc.metrics != nil {
				uc.metrics.RecordCacheHit("today-actions")
			}
			return res, nil
		}
	}

	actions, err := uc.backend.TodayActions(ctx, city)
	if err != nil {
		uc.logger.Warn("today actions fetch failed",
			xlogger.String("city", city),
			xlogger.Error(err),
		)
		res.Degraded = append(res.Degraded, models.SectionActions)
		res.Actions = &models.TodayActions{
			Items:      []models.ActionItem{},
			DataSource: models.UnknownSource,
		}
		if uc.metrics != nil {
			uc.metrics.RecordDegradedView("today-actions")
		}
		return res, nil
	}

	res.Actions = actions
	if actions.IsStale() && uc.metrics != nil {
		uc.metrics.RecordStaleView("today-actions")
	}

	if uc.cache != nil {
		ttl := uc.defaultTTL
		if actions.TTLSeconds > 0 {
			ttl = time.Duration(actions.TTLSeconds) * time.Second
		}
		if err := uc.cache.Set(ctx, key, actions, ttl); err != nil {
			uc.logger.Warn("today actions cache write failed", xlogger.Error(err))
		}
	}

	return res, nil
}
