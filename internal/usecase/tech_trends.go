package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"BayPortal/internal/domain/models"
	"BayPortal/internal/service/backend"
	xlogger "BayPortal/pkg/logger"
	"BayPortal/pkg/metrics"
)

// TechTrendsUseCase aggregates a channel's video feed with the editorial
// context blurb. The two branches degrade independently: a failed video fetch
// still shows the context, and vice versa.
type TechTrendsUseCase struct {
	backend    *backend.Client
	logger     *xlogger.Logger
	metrics    *metrics.Recorder
	timeout    time.Duration
	videoLimit int
}

func NewTechTrendsUseCase(b *backend.Client, l *xlogger.Logger, m *metrics.Recorder, videoLimit int) *TechTrendsUseCase {
	return &TechTrendsUseCase{
		backend:    b,
		logger:     l,
		metrics:    m,
		timeout:    10 * time.Second,
		videoLimit: videoLimit,
	}
}

func (uc *TechTrendsUseCase) Fetch(ctx context.Context, channel string) (*models.TechTrends, error) {
	if channel == "" {
		return nil, fmt.Errorf("channel required")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res := &models.TechTrends{
		Channel: channel,
		Videos:  []models.VideoItem{},
	}

	type item struct {
		section string
		videos  []models.VideoItem
		blurb   *models.TechTrendContext
		err     error
	}
	ch := make(chan item, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.backend.ChannelVideos(ctx, channel, uc.videoLimit)
		ch <- item{section: models.SectionVideos, videos: v, err: err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.backend.TrendContext(ctx)
		ch <- item{section: models.SectionContext, blurb: v, err: err}
	}()

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		if it.err != nil {
			uc.logger.Warn("tech trends fetch failed",
				xlogger.String("section", it.section),
				xlogger.String("channel", channel),
				xlogger.Error(it.err),
			)
			res.Degraded = append(res.Degraded, it.section)
			continue
		}
		switch it.section {
		case models.SectionVideos:
			if it.videos != nil {
				res.Videos = it.videos
			}
		case models.SectionContext:
			res.Context = it.blurb
		}
	}

	if len(res.Degraded) > 0 {
		sort.Strings(res.Degraded)
		if uc.metrics != nil {
			uc.metrics.RecordDegradedView("tech-trends")
		}
	}
	return res, nil
}
