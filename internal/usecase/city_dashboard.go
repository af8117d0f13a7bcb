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

// CityDashboardUseCase aggregates the three city feeds: restaurants, deals,
// and gossip. Each branch fails independently; a failed branch contributes an
// empty list and its name to Degraded. The result is always complete.
type CityDashboardUseCase struct {
	backend *backend.Client
	logger  *xlogger.Logger
	metrics *metrics.Recorder
	timeout time.Duration

	defaultCuisine  string
	restaurantLimit int
	dealLimit       int
	gossipLimit     int
}

func NewCityDashboardUseCase(b *backend.Client, l *xlogger.Logger, m *metrics.Recorder, defaultCuisine string, restaurantLimit, dealLimit, gossipLimit int) *CityDashboardUseCase {
	return &CityDashboardUseCase{
		backend:         b,
		logger:          l,
		metrics:         m,
		timeout:         10 * time.Second,
		defaultCuisine:  defaultCuisine,
		restaurantLimit: restaurantLimit,
		dealLimit:       dealLimit,
		gossipLimit:     gossipLimit,
	}
}

// Fetch runs the fan-out cycle for one city. It never fails: whatever subset
// of feeds arrived is what the view gets.
func (uc *CityDashboardUseCase) Fetch(ctx context.Context, city, cuisine string) (*models.CityDashboard, error) {
	if city == "" {
		return nil, fmt.Errorf("city required")
	}
	if cuisine == "" {
		cuisine = uc.defaultCuisine
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res := &models.CityDashboard{
		City:        city,
		Restaurants: []models.FeedItem{},
		Deals:       []models.FeedItem{},
		Gossip:      []models.FeedItem{},
	}

	type item struct {
		name string
		val  []models.FeedItem
		err  error
	}
	ch := make(chan item, 3)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.backend.Restaurants(ctx, cuisine, uc.restaurantLimit)
		ch <- item{models.FeedRestaurants, v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.backend.Deals(ctx, uc.dealLimit)
		ch <- item{models.FeedDeals, v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.backend.Gossip(ctx, uc.gossipLimit)
		ch <- item{models.FeedGossip, v, err}
	}()

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		if it.err != nil {
			uc.logger.Warn("city feed fetch failed",
				xlogger.String("feed", it.name),
				xlogger.String("city", city),
				xlogger.Error(it.err),
			)
			res.Degraded = append(res.Degraded, it.name)
			continue
		}
		switch it.name {
		case models.FeedRestaurants:
			res.Restaurants = it.val
		case models.FeedDeals:
			res.Deals = it.val
		case models.FeedGossip:
			res.Gossip = it.val
		}
	}

	sort.Strings(res.Degraded)
	if len(res.Degraded) > 0 && uc.metrics != nil {
		uc.metrics.RecordDegradedView("city-dashboard")
	}
	return res, nil
}
