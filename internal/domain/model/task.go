package model

import (
	"time"

	"academic-hub/internal/domain"

	"github.com/google/uuid"
)

type TaskType string

const (
	TaskNote      TaskType = "note"
	TaskTimetable TaskType = "timetable"
)

// StudyTask is a personal study log entry: a quick note or a timetable slot.
type StudyTask struct {
	ID      string
	UserID  string
	Type    TaskType
	Title   string
	Content string
	Date    *time.Time // set for timetable entries
}

func NewStudyTask(id, userID string, typ TaskType, title, content string, date *time.Time) (*StudyTask, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if userID == "" || title == "" {
		return nil, domain.ErrInvalidArgument
	}
	if typ != TaskNote && typ != TaskTimetable {
		return nil, domain.ErrInvalidArgument
	}
	return &StudyTask{ID: id, UserID: userID, Type: typ, Title: title, Content: content, Date: date}, nil
}
