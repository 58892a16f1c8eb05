package service

import (
	"go.uber.org/zap"

	"github.com/musicschool/progress-api/internal/model"
	"github.com/musicschool/progress-api/internal/repository"
)

// ProgressService records lesson completions and serves per-student history.
type ProgressService struct {
	progress *repository.ProgressRepository
	lessons  *repository.LessonRepository
	logger   *zap.Logger
}

func NewProgressService(progress *repository.ProgressRepository, lessons *repository.LessonRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		progress: progress,
		lessons:  lessons,
		logger:   logger,
	}
}

// AddProgress records that a student completed a lesson. The lesson must
// exist; the write is aborted before the ledger is touched when it does not.
// The student id is stored as supplied.
func (s *ProgressService) AddProgress(studentID, lessonID int) (*model.ProgressEntry, error) {
	if s.lessons.FindByID(lessonID) == nil {
		return nil, model.ErrLessonNotFound
	}

	entry := s.progress.Add(studentID, lessonID)

	s.logger.Info("Progress recorded",
		zap.Int("student_id", studentID),
		zap.Int("lesson_id", lessonID),
	)

	return &entry, nil
}

// StudentProgress returns the completion history of one student in
// insertion order. The result may be empty.
func (s *ProgressService) StudentProgress(studentID int) []model.ProgressEntry {
	return s.progress.ByStudent(studentID)
}
