package repository

import (
	"context"

	"academic-hub/internal/domain/model"
)

// -----------------------------
// Study materials
// -----------------------------

type MaterialRepository interface {
	Save(ctx context.Context, tx Tx, m *model.StudyMaterial) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.StudyMaterial, error)
	ListAll(ctx context.Context, tx Tx) ([]*model.StudyMaterial, error)
	// Search matches query against title and school, case-insensitive.
	Search(ctx context.Context, tx Tx, query string) ([]*model.StudyMaterial, error)
	Delete(ctx context.Context, tx Tx, id string) error
	CountMaterials(ctx context.Context, tx Tx) (int, error)
}

// -----------------------------
// Favorites
// -----------------------------

type FavoriteRepository interface {
	Add(ctx context.Context, tx Tx, userID, materialID string) error
	Remove(ctx context.Context, tx Tx, userID, materialID string) error
	ListByUser(ctx context.Context, tx Tx, userID string) ([]*model.StudyMaterial, error)
}

// -----------------------------
// Ratings
// -----------------------------

type RatingRepository interface {
	// Save upserts the user's vote for a material.
	Save(ctx context.Context, tx Tx, r *model.Rating) error
	// Average returns the mean stars and vote count for a material.
	Average(ctx context.Context, tx Tx, materialID string) (float64, int, error)
}
