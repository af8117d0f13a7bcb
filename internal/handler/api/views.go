package api

import (
	"context"
	"time"

	"BayPortal/internal/domain/models"
	"BayPortal/internal/service/backend"
	"BayPortal/internal/usecase"
	"BayPortal/internal/view"
	"BayPortal/pkg/cache"
	xhttp "BayPortal/pkg/http"
	xlogger "BayPortal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ViewsHandler serves the bound portal views over Echo.
type ViewsHandler struct {
	logger *xlogger.Logger
	cache  cache.Service

	city      *usecase.CityDashboardUseCase
	financial *usecase.FinancialStatusUseCase
	trends    *usecase.TechTrendsUseCase
	actions   *usecase.TodayActionsUseCase

	health  *backend.Client
	started time.Time
	env     string
}

func NewViewsHandler(
	logger *xlogger.Logger,
	cs cache.Service,
	city *usecase.CityDashboardUseCase,
	financial *usecase.FinancialStatusUseCase,
	trends *usecase.TechTrendsUseCase,
	actions *usecase.TodayActionsUseCase,
	health *backend.Client,
	env string,
) *ViewsHandler {
	return &ViewsHandler{
		logger:    logger,
		cache:     cs,
		city:      city,
		financial: financial,
		trends:    trends,
		actions:   actions,
		health:    health,
		started:   time.Now(),
		env:       env,
	}
}

func (h *ViewsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/views")
	g.GET("/city-dashboard", h.CityDashboard)
	g.GET("/financial-status", h.FinancialStatus)
	g.GET("/tech-trends", h.TechTrends)
	g.GET("/today-actions", h.TodayActions)

	e.GET("/healthz", h.Healthz)
}

func (h *ViewsHandler) CityDashboard(c echo.Context) error {
	req := &models.CityDashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	agg, err := h.city.Fetch(c.Request().Context(), req.City, req.Cuisine)
	if err != nil {
		h.logger.Error("city dashboard usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view.BindCityDashboard(agg))
}

func (h *ViewsHandler) FinancialStatus(c echo.Context) error {
	agg := h.financial.Fetch(c.Request().Context())
	return xhttp.SuccessResponse(c, view.BindFinancialStatus(agg))
}

func (h *ViewsHandler) TechTrends(c echo.Context) error {
	req := &models.TechTrendsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	agg, err := h.trends.Fetch(c.Request().Context(), req.Channel)
	if err != nil {
		h.logger.Error("tech trends usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view.BindTechTrends(agg, time.Now()))
}

func (h *ViewsHandler) TodayActions(c echo.Context) error {
	req := &models.TodayActionsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	agg, err := h.actions.Fetch(c.Request().Context(), req.City)
	if err != nil {
		h.logger.Error("today actions usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, view.BindTodayActions(agg, time.Now()))
}

type healthStatus struct {
	Status       string `json:"status"`
	Environment  string `json:"environment"`
	UptimeSec    int64  `json:"uptimeSec"`
	Backend      string `json:"backend"`
	RecentErrors uint64 `json:"recentErrors"`
}

// Healthz reports liveness plus best-effort backend reachability. The
// reachability probe is cached for 30 seconds so health checks stay cheap.
func (h *ViewsHandler) Healthz(c echo.Context) error {
	st := healthStatus{
		Status:      "ok",
		Environment: h.env,
		UptimeSec:   int64(time.Since(h.started).Seconds()),
		Backend:     h.backendStatus(c.Request().Context()),
	}
	if col := h.logger.Collector(); col != nil {
		_, total := col.Snapshot()
		st.RecentErrors = total
	}
	if st.Backend != "ok" {
		st.Status = "degraded"
	}
	return xhttp.SuccessResponse(c, st)
}

func (h *ViewsHandler) backendStatus(ctx context.Context) string {
	const key = "health:backend"

	if h.cache != nil {
		var cached string
		if err := h.cache.Get(ctx, key, &cached); err == nil {
			return cached
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := "ok"
	if _, err := h.health.TrendContext(ctx); err != nil {
		status = "unreachable"
	}

	if h.cache != nil {
		_ = h.cache.Set(ctx, key, status, 30*time.Second)
	}
	return status
}
