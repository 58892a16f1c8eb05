package model

import "time"

// ProgressEntry records that a student completed a lesson. The ledger is
// append-only and carries no uniqueness constraint: the same pair may be
// recorded again when a student repeats a lesson.
type ProgressEntry struct {
	StudentID   int       `json:"studentId"`
	LessonID    int       `json:"lessonId"`
	CompletedAt time.Time `json:"completedAt"`
}
