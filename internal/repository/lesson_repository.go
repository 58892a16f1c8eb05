package repository

import (
	"sync"

	"github.com/musicschool/progress-api/internal/model"
)

// LessonRepository is the in-memory lesson catalog.
type LessonRepository struct {
	mu      sync.RWMutex
	lessons []model.Lesson
}

func NewLessonRepository() *LessonRepository {
	return &LessonRepository{}
}

// Create appends a new lesson with the next sequential id.
func (r *LessonRepository) Create(title, description string) model.Lesson {
	r.mu.Lock()
	defer r.mu.Unlock()

	lesson := model.Lesson{
		ID:          len(r.lessons) + 1,
		Title:       title,
		Description: description,
	}
	r.lessons = append(r.lessons, lesson)
	return lesson
}

// FindByID returns the lesson with the given id, or nil if none exists.
func (r *LessonRepository) FindByID(id int) *model.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.lessons {
		if r.lessons[i].ID == id {
			lesson := r.lessons[i]
			return &lesson
		}
	}
	return nil
}

// GetAll returns every lesson in insertion order.
func (r *LessonRepository) GetAll() []model.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Lesson, len(r.lessons))
	copy(out, r.lessons)
	return out
}
