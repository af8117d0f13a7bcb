package models

// View request parameters, bound from query strings.

type CityDashboardRequest struct {
	City    string `query:"city" validate:"required"`
	Cuisine string `query:"cuisine"`
}

type TechTrendsRequest struct {
	Channel string `query:"channel" default:"default"`
}

type TodayActionsRequest struct {
	City string `query:"city" validate:"required"`
}
