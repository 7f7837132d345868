package repository

import (
	"testing"

	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepositoryCategories(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	questions := NewQuestionRepository(db)

	java := &model.Category{Name: "Java"}
	sql := &model.Category{Name: "SQL"}
	require.NoError(t, categories.Create(java))
	require.NoError(t, categories.Create(sql))

	q1 := &model.Question{Title: "JDBC", Categories: []model.Category{*java, *sql}}
	q2 := &model.Question{Title: "Joins", Categories: []model.Category{*sql}}
	require.NoError(t, questions.Create(q1))
	require.NoError(t, questions.Create(q2))

	found, err := questions.FindByID(q1.ID)
	require.NoError(t, err)
	assert.Len(t, found.Categories, 2)

	bySQL, err := questions.FindByCategoryID(sql.ID)
	require.NoError(t, err)
	require.Len(t, bySQL, 2)
	assert.Equal(t, "JDBC", bySQL[0].Title)
	assert.Equal(t, "Joins", bySQL[1].Title)

	byJava, err := questions.FindByCategoryID(java.ID)
	require.NoError(t, err)
	require.Len(t, byJava, 1)

	require.NoError(t, questions.RemoveCategory(found, sql))
	bySQL, err = questions.FindByCategoryID(sql.ID)
	require.NoError(t, err)
	require.Len(t, bySQL, 1)
	assert.Equal(t, "Joins", bySQL[0].Title)
}

func TestQuestionRepositoryUpdateReplacesCategories(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	questions := NewQuestionRepository(db)

	a := &model.Category{Name: "a"}
	b := &model.Category{Name: "b"}
	require.NoError(t, categories.Create(a))
	require.NoError(t, categories.Create(b))

	q := &model.Question{Title: "q", Categories: []model.Category{*a}}
	require.NoError(t, questions.Create(q))

	q.Title = "q2"
	q.Categories = []model.Category{*b}
	require.NoError(t, questions.Update(q))

	found, err := questions.FindByID(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "q2", found.Title)
	require.Len(t, found.Categories, 1)
	assert.Equal(t, "b", found.Categories[0].Name)

	found.Categories = nil
	require.NoError(t, questions.Update(found))
	found, err = questions.FindByID(q.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Categories)
}

func TestQuestionRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	questions := NewQuestionRepository(db)

	c := &model.Category{Name: "c"}
	require.NoError(t, categories.Create(c))
	q := &model.Question{Title: "q", Categories: []model.Category{*c}}
	require.NoError(t, questions.Create(q))

	require.NoError(t, questions.Delete(q))

	_, err := questions.FindByID(q.ID)
	assert.True(t, apperror.IsNotFound(err))

	byCategory, err := questions.FindByCategoryID(c.ID)
	require.NoError(t, err)
	assert.Empty(t, byCategory)

	_, err = categories.FindByID(c.ID)
	assert.NoError(t, err)
}
