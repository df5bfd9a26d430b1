package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
	"academic-hub/internal/infra/logging"
)

// Compile-time check
var _ MaterialUseCase = (*materialUC)(nil)

// MaterialUseCase manages the uploaded study material catalog.
type MaterialUseCase interface {
	Create(ctx context.Context, title string, typ model.MaterialType, fileURL, school, year, description, uploadedBy string) (*model.StudyMaterial, error)
	Update(ctx context.Context, m *model.StudyMaterial) error
	Get(ctx context.Context, id string) (*model.StudyMaterial, error)
	List(ctx context.Context, query string) ([]*model.StudyMaterial, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type materialUC struct {
	materials repository.MaterialRepository
	log       *zerolog.Logger
}

func NewMaterialUseCase(materials repository.MaterialRepository, logger *zerolog.Logger) *materialUC {
	return &materialUC{materials: materials, log: logger}
}

func (u *materialUC) Create(ctx context.Context, title string, typ model.MaterialType, fileURL, school, year, description, uploadedBy string) (*model.StudyMaterial, error) {
	defer logging.TraceDuration(u.log, "MaterialUC.Create")()
	m, err := model.NewStudyMaterial("", title, typ, fileURL, school, year, description, uploadedBy)
	if err != nil {
		return nil, err
	}
	if err := u.materials.Save(ctx, repository.NoTX, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *materialUC) Update(ctx context.Context, m *model.StudyMaterial) error {
	return u.materials.Save(ctx, repository.NoTX, m)
}

func (u *materialUC) Get(ctx context.Context, id string) (*model.StudyMaterial, error) {
	return u.materials.FindByID(ctx, repository.NoTX, id)
}

// List returns the full catalog, or a filtered view when query is non-empty.
func (u *materialUC) List(ctx context.Context, query string) ([]*model.StudyMaterial, error) {
	defer logging.TraceDuration(u.log, "MaterialUC.List")()
	query = strings.TrimSpace(query)
	if query == "" {
		return u.materials.ListAll(ctx, repository.NoTX)
	}
	return u.materials.Search(ctx, repository.NoTX, query)
}

func (u *materialUC) Delete(ctx context.Context, id string) error {
	defer logging.TraceDuration(u.log, "MaterialUC.Delete")()
	return u.materials.Delete(ctx, repository.NoTX, id)
}

func (u *materialUC) Count(ctx context.Context) (int, error) {
	return u.materials.CountMaterials(ctx, repository.NoTX)
}
