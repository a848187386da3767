package repository

import (
	"database/sql"
	"fmt"
	"time"

	"alphaview/internal/db"
	"alphaview/internal/db/models/postgres/public/model"
	pgTable "alphaview/internal/db/models/postgres/public/table"
	sqliteTable "alphaview/internal/db/models/sqlite/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/golang/glog"
	"github.com/google/uuid"
)

type FavoriteRepository interface {
	Add(tx *sql.Tx, userID, symbol string) (*model.Favorite, error)
	List(tx *sql.Tx, userID string) ([]model.Favorite, error)
}

// NewFavoriteRepository returns the repository for the dialect of the
// connection opened with db.New.
func NewFavoriteRepository(driver string) (FavoriteRepository, error) {
	switch driver {
	case db.Driver_Postgres:
		return favoriteRepositoryHandler{}, nil
	case db.Driver_Sqlite:
		return sqliteFavoriteRepositoryHandler{}, nil
	}
	return nil, fmt.Errorf("no favorite repository for driver %q", driver)
}

func newFavorite(userID, symbol string) model.Favorite {
	return model.Favorite{
		FavoriteID: uuid.New(),
		UserID:     userID,
		Symbol:     symbol,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

type favoriteRepositoryHandler struct{}

func (h favoriteRepositoryHandler) Add(tx *sql.Tx, userID, symbol string) (*model.Favorite, error) {
	t := pgTable.Favorite
	favorite := newFavorite(userID, symbol)
	query := t.INSERT(
		t.AllColumns,
	).MODEL(
		favorite,
	)

	_, err := query.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert favorite %s for %s: %w", symbol, userID, err)
	}

	return &favorite, nil
}

func (h favoriteRepositoryHandler) List(tx *sql.Tx, userID string) ([]model.Favorite, error) {
	t := pgTable.Favorite
	query := t.SELECT(t.AllColumns).
		WHERE(
			t.UserID.EQ(postgres.String(userID)),
		).
		ORDER_BY(t.CreatedAt.ASC(), t.FavoriteID.ASC())

	out := []model.Favorite{}
	err := query.Query(tx, &out)
	if err != nil {
		glog.V(1).Info(query.DebugSql())
		return nil, fmt.Errorf("failed to query favorites for %s: %w", userID, err)
	}

	return out, nil
}

type sqliteFavoriteRepositoryHandler struct{}

func (h sqliteFavoriteRepositoryHandler) Add(tx *sql.Tx, userID, symbol string) (*model.Favorite, error) {
	t := sqliteTable.Favorite
	favorite := newFavorite(userID, symbol)
	query := t.INSERT(
		t.AllColumns,
	).MODEL(
		favorite,
	)

	_, err := query.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert favorite %s for %s: %w", symbol, userID, err)
	}

	return &favorite, nil
}

func (h sqliteFavoriteRepositoryHandler) List(tx *sql.Tx, userID string) ([]model.Favorite, error) {
	t := sqliteTable.Favorite
	query := t.SELECT(t.AllColumns).
		WHERE(
			t.UserID.EQ(sqlite.String(userID)),
		).
		ORDER_BY(t.CreatedAt.ASC(), t.FavoriteID.ASC())

	out := []model.Favorite{}
	err := query.Query(tx, &out)
	if err != nil {
		glog.V(1).Info(query.DebugSql())
		return nil, fmt.Errorf("failed to query favorites for %s: %w", userID, err)
	}

	return out, nil
}
