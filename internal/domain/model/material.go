package model

import (
	"time"

	"academic-hub/internal/domain"

	"github.com/google/uuid"
)

type MaterialType string

const (
	MaterialNote      MaterialType = "note"
	MaterialPastPaper MaterialType = "past-paper"
)

// StudyMaterial is an uploaded note or past paper. FileURL is an opaque
// pointer into the external object store; this service never touches the
// bytes behind it.
type StudyMaterial struct {
	ID          string
	Title       string
	Type        MaterialType
	FileURL     string
	School      string
	Year        string
	Description string
	UploadedBy  string // admin user ID
	CreatedAt   time.Time
}

func NewStudyMaterial(id, title string, typ MaterialType, fileURL, school, year, description, uploadedBy string) (*StudyMaterial, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if title == "" || fileURL == "" {
		return nil, domain.ErrInvalidArgument
	}
	if typ != MaterialNote && typ != MaterialPastPaper {
		return nil, domain.ErrInvalidArgument
	}
	return &StudyMaterial{
		ID:          id,
		Title:       title,
		Type:        typ,
		FileURL:     fileURL,
		School:      school,
		Year:        year,
		Description: description,
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now(),
	}, nil
}

// Rating is a single 1-5 star vote on a material.
type Rating struct {
	UserID     string
	MaterialID string
	Stars      int
	CreatedAt  time.Time
}

func NewRating(userID, materialID string, stars int) (*Rating, error) {
	if userID == "" || materialID == "" {
		return nil, domain.ErrInvalidArgument
	}
	if stars < 1 || stars > 5 {
		return nil, domain.ErrInvalidArgument
	}
	return &Rating{UserID: userID, MaterialID: materialID, Stars: stars, CreatedAt: time.Now()}, nil
}
