package resolver

import (
	"context"

	api_types "alphaview/api-types"
	alphaview_errors "alphaview/internal"
	"alphaview/internal/db/models/postgres/public/model"
)

func (r resolverHandler) AddFavorite(ctx context.Context, userID string, req api_types.AddFavoriteRequest) (*model.Favorite, error) {
	symbol := normalizeSymbol(req.Symbol())
	if symbol == "" {
		return nil, alphaview_errors.ErrMissingTicker
	}

	tx, err := r.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, alphaview_errors.ErrPersistence{Op: "begin favorite transaction", Err: err}
	}
	defer tx.Rollback()

	favorite, err := r.FavoriteRepository.Add(tx, userID, symbol)
	if err != nil {
		return nil, alphaview_errors.ErrPersistence{Op: "add favorite", Err: err}
	}

	err = tx.Commit()
	if err != nil {
		return nil, alphaview_errors.ErrPersistence{Op: "commit favorite", Err: err}
	}

	return favorite, nil
}

func (r resolverHandler) ListFavorites(ctx context.Context, userID string) (*api_types.FavoritesView, error) {
	favorites, err := r.listFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &api_types.FavoritesView{
		Favorites: favorites,
	}, nil
}

func (r resolverHandler) listFavorites(ctx context.Context, userID string) ([]model.Favorite, error) {
	tx, err := r.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, alphaview_errors.ErrPersistence{Op: "begin favorite transaction", Err: err}
	}
	defer tx.Rollback()

	favorites, err := r.FavoriteRepository.List(tx, userID)
	if err != nil {
		return nil, alphaview_errors.ErrPersistence{Op: "list favorites", Err: err}
	}

	return favorites, nil
}
