package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository_AddAndFilterByStudent(t *testing.T) {
	repo := NewProgressRepository()

	before := time.Now()
	entry := repo.Add(1, 7)

	assert.Equal(t, 1, entry.StudentID)
	assert.Equal(t, 7, entry.LessonID)
	assert.False(t, entry.CompletedAt.Before(before))

	repo.Add(2, 7)
	repo.Add(1, 8)

	mine := repo.ByStudent(1)
	require.Len(t, mine, 2)
	assert.Equal(t, 7, mine[0].LessonID)
	assert.Equal(t, 8, mine[1].LessonID)

	assert.Empty(t, repo.ByStudent(99))
	assert.Equal(t, 3, repo.Len())
}

func TestProgressRepository_AllowsDuplicatePairs(t *testing.T) {
	repo := NewProgressRepository()

	repo.Add(1, 7)
	repo.Add(1, 7)

	// Re-completion of the same lesson is recorded again, not deduplicated.
	assert.Len(t, repo.ByStudent(1), 2)
}
