package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain"
	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

var _ FavoriteUseCase = (*favoriteUC)(nil)

type FavoriteUseCase interface {
	Add(ctx context.Context, userID, materialID string) error
	Remove(ctx context.Context, userID, materialID string) error
	List(ctx context.Context, userID string) ([]*model.StudyMaterial, error)
}

type favoriteUC struct {
	favorites repository.FavoriteRepository
	materials repository.MaterialRepository
	log       *zerolog.Logger
}

func NewFavoriteUseCase(favorites repository.FavoriteRepository, materials repository.MaterialRepository, logger *zerolog.Logger) *favoriteUC {
	return &favoriteUC{favorites: favorites, materials: materials, log: logger}
}

func (u *favoriteUC) Add(ctx context.Context, userID, materialID string) error {
	if userID == "" || materialID == "" {
		return domain.ErrInvalidArgument
	}
	// The material must exist before it can be starred.
	if _, err := u.materials.FindByID(ctx, repository.NoTX, materialID); err != nil {
		return err
	}
	return u.favorites.Add(ctx, repository.NoTX, userID, materialID)
}

func (u *favoriteUC) Remove(ctx context.Context, userID, materialID string) error {
	if userID == "" || materialID == "" {
		return domain.ErrInvalidArgument
	}
	return u.favorites.Remove(ctx, repository.NoTX, userID, materialID)
}

func (u *favoriteUC) List(ctx context.Context, userID string) ([]*model.StudyMaterial, error) {
	return u.favorites.ListByUser(ctx, repository.NoTX, userID)
}
