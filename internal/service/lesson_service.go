package service

import (
	"go.uber.org/zap"

	"github.com/musicschool/progress-api/internal/model"
	"github.com/musicschool/progress-api/internal/repository"
)

// LessonService manages the lesson catalog.
type LessonService struct {
	lessons *repository.LessonRepository
	logger  *zap.Logger
}

func NewLessonService(lessons *repository.LessonRepository, logger *zap.Logger) *LessonService {
	return &LessonService{
		lessons: lessons,
		logger:  logger,
	}
}

// Create adds a lesson to the catalog.
func (s *LessonService) Create(title, description string) model.Lesson {
	lesson := s.lessons.Create(title, description)

	s.logger.Info("Lesson created",
		zap.Int("id", lesson.ID),
		zap.String("title", lesson.Title),
	)

	return lesson
}

// GetAll returns the catalog in insertion order.
func (s *LessonService) GetAll() []model.Lesson {
	return s.lessons.GetAll()
}
