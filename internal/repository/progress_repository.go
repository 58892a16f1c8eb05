package repository

import (
	"sync"
	"time"

	"github.com/musicschool/progress-api/internal/model"
)

// ProgressRepository is the append-only ledger of lesson completions.
// Entries reference lessons that the caller has already validated; the
// student id is stored as supplied.
type ProgressRepository struct {
	mu      sync.RWMutex
	entries []model.ProgressEntry
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// Add appends an entry stamped with the current time and returns it.
func (r *ProgressRepository) Add(studentID, lessonID int) model.ProgressEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := model.ProgressEntry{
		StudentID:   studentID,
		LessonID:    lessonID,
		CompletedAt: time.Now(),
	}
	r.entries = append(r.entries, entry)
	return entry
}

// ByStudent returns the entries for one student in insertion order. The
// result may be empty but is never nil.
func (r *ProgressRepository) ByStudent(studentID int) []model.ProgressEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.ProgressEntry{}
	for _, entry := range r.entries {
		if entry.StudentID == studentID {
			out = append(out, entry)
		}
	}
	return out
}

// Len reports the total number of entries in the ledger.
func (r *ProgressRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
