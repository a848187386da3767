package resolver

import (
	"context"
	"database/sql"

	api_types "alphaview/api-types"
	"alphaview/internal/db/models/postgres/public/model"
	"alphaview/internal/repository"
)

type Resolver interface {
	// company endpoints
	SearchCompany(ctx context.Context, req api_types.CompanySearchRequest) (*api_types.CompanyView, error)
	ListTickers(ctx context.Context) (*api_types.TickersView, error)

	// favorites endpoints
	AddFavorite(ctx context.Context, userID string, req api_types.AddFavoriteRequest) (*model.Favorite, error)
	ListFavorites(ctx context.Context, userID string) (*api_types.FavoritesView, error)

	// chart endpoints
	ChartForm(ctx context.Context, userID string, req api_types.ChartRequest, formErrors []string) (*api_types.ChartView, error)
	GetChart(ctx context.Context, userID string, req api_types.ChartRequest) (*api_types.ChartView, error)
}

type resolverHandler struct {
	Db                     *sql.DB
	AlphaVantageRepository repository.AlphaVantageRepository
	FavoriteRepository     repository.FavoriteRepository
	TickerRepository       repository.TickerRepository
}

func NewResolver(
	db *sql.DB,
	alphaVantageRepository repository.AlphaVantageRepository,
	favoriteRepository repository.FavoriteRepository,
	tickerRepository repository.TickerRepository,
) Resolver {
	return resolverHandler{
		Db:                     db,
		AlphaVantageRepository: alphaVantageRepository,
		FavoriteRepository:     favoriteRepository,
		TickerRepository:       tickerRepository,
	}
}
