package types

import (
	"html/template"

	"alphaview/internal/chart"
	"alphaview/internal/db/models/postgres/public/model"
	"alphaview/internal/domain"
)

type FlashLevel string

const (
	FlashLevel_Error   FlashLevel = "error"
	FlashLevel_Success FlashLevel = "success"
)

type Flash struct {
	Level   FlashLevel
	Message string
}

type CompanySearchRequest struct {
	Ticker string `form:"ticker" binding:"required,max=10"`
}

type CompanyView struct {
	Form       CompanySearchRequest
	FormErrors []string
	Flashes    []Flash
	// nil unless the API returned a non-empty document
	CompanyResult *domain.Document
}

type TickersView struct {
	Tickers domain.TickerList
}

type AddFavoriteRequest struct {
	Ticker        string `form:"ticker"`
	CompanySymbol string `form:"company_symbol"`
}

// Symbol prefers ticker and falls back to the legacy company_symbol field.
func (r AddFavoriteRequest) Symbol() string {
	if r.Ticker != "" {
		return r.Ticker
	}
	return r.CompanySymbol
}

type FavoritesView struct {
	Favorites []model.Favorite
}

type ChartRequest struct {
	Ticker     string `form:"ticker" binding:"required,max=10"`
	TimeSeries string `form:"time_series" binding:"required"`
}

type ChartView struct {
	Form          ChartRequest
	FormErrors    []string
	Flashes       []Flash
	Granularities []domain.Granularity
	// distinct favorited symbols of the user
	QuickPicks []string

	Meta        *domain.Document
	GraphResult *domain.Document
	Chart       *chart.LineChart
	ChartHTML   template.HTML
	Summary     *domain.SeriesSummary
}
