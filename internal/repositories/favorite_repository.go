package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "github.com/ljnoam/server-traveloo/internal/models/db_models"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *dbm.Favorite) error
	ListByUser(ctx context.Context, userID string) ([]dbm.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *dbm.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]dbm.Favorite, error) {
	var favorites []dbm.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
