package model

import (
	"academic-hub/internal/domain"

	"github.com/google/uuid"
)

// University is a catalog entry students pick their school from.
type University struct {
	ID       string
	Name     string
	Location string
}

func NewUniversity(id, name, location string) (*University, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if name == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &University{ID: id, Name: name, Location: location}, nil
}
