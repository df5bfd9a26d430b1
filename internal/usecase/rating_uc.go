package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

var _ RatingUseCase = (*ratingUC)(nil)

// RatingSummary is the aggregate view of a material's votes.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type RatingUseCase interface {
	// Rate records or replaces the user's star vote for a material.
	Rate(ctx context.Context, userID, materialID string, stars int) error
	Summary(ctx context.Context, materialID string) (*RatingSummary, error)
}

type ratingUC struct {
	ratings   repository.RatingRepository
	materials repository.MaterialRepository
	log       *zerolog.Logger
}

func NewRatingUseCase(ratings repository.RatingRepository, materials repository.MaterialRepository, logger *zerolog.Logger) *ratingUC {
	return &ratingUC{ratings: ratings, materials: materials, log: logger}
}

func (u *ratingUC) Rate(ctx context.Context, userID, materialID string, stars int) error {
	r, err := model.NewRating(userID, materialID, stars)
	if err != nil {
		return err
	}
	if _, err := u.materials.FindByID(ctx, repository.NoTX, materialID); err != nil {
		return err
	}
	return u.ratings.Save(ctx, repository.NoTX, r)
}

func (u *ratingUC) Summary(ctx context.Context, materialID string) (*RatingSummary, error) {
	avg, count, err := u.ratings.Average(ctx, repository.NoTX, materialID)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{Average: avg, Count: count}, nil
}
