package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonRepository_CreateAndFindByID(t *testing.T) {
	repo := NewLessonRepository()

	scales := repo.Create("Scales", "Major scales in all keys")
	arpeggios := repo.Create("Arpeggios", "Triad arpeggios")

	assert.Equal(t, 1, scales.ID)
	assert.Equal(t, 2, arpeggios.ID)

	found := repo.FindByID(2)
	require.NotNil(t, found)
	assert.Equal(t, "Arpeggios", found.Title)

	assert.Nil(t, repo.FindByID(99))
}

func TestLessonRepository_GetAll_PreservesInsertionOrder(t *testing.T) {
	repo := NewLessonRepository()
	repo.Create("Scales", "")
	repo.Create("Arpeggios", "")

	all := repo.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Scales", all[0].Title)
	assert.Equal(t, "Arpeggios", all[1].Title)
}
