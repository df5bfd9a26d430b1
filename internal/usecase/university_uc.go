package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
)

// Compile-time check
var _ UniversityUseCase = (*universityUC)(nil)

// UniversityUseCase manages the university catalog.
type UniversityUseCase interface {
	Add(ctx context.Context, name, location string) (*model.University, error)
	List(ctx context.Context) ([]*model.University, error)
}

type universityUC struct {
	universities repository.UniversityRepository
	log          *zerolog.Logger
}

func NewUniversityUseCase(universities repository.UniversityRepository, logger *zerolog.Logger) *universityUC {
	return &universityUC{universities: universities, log: logger}
}

func (u *universityUC) Add(ctx context.Context, name, location string) (*model.University, error) {
	uni, err := model.NewUniversity("", name, location)
	if err != nil {
		return nil, err
	}
	if err := u.universities.Save(ctx, repository.NoTX, uni); err != nil {
		return nil, err
	}
	return uni, nil
}

func (u *universityUC) List(ctx context.Context) ([]*model.University, error) {
	return u.universities.ListAll(ctx, repository.NoTX)
}
