// Package testutil содержит общие помощники для тестов с in-memory SQLite.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/pkg/database"
)

// NewTestDB создает изолированную in-memory базу с пустыми таблицами
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewSQLiteDB(dsn, "silent")
	require.NoError(t, err, "Не удалось открыть тестовую SQLite базу")

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// SeedCategories добавляет категории с указанными именами (id присваиваются по порядку)
func SeedCategories(t *testing.T, db *gorm.DB, types ...string) []entity.Category {
	t.Helper()

	categories := make([]entity.Category, len(types))
	for i, typ := range types {
		categories[i] = entity.Category{Type: typ}
	}
	if len(categories) > 0 {
		require.NoError(t, db.Create(&categories).Error)
	}
	return categories
}

// SeedQuestions добавляет вопросы и возвращает их с присвоенными id
func SeedQuestions(t *testing.T, db *gorm.DB, questions ...entity.Question) []entity.Question {
	t.Helper()

	if len(questions) > 0 {
		require.NoError(t, db.Create(&questions).Error)
	}
	return questions
}

// GenerateQuestions создает n вопросов категории category с текстом "Question #i"
func GenerateQuestions(n int, category int) []entity.Question {
	questions := make([]entity.Question, n)
	for i := range questions {
		questions[i] = entity.Question{
			Question:   fmt.Sprintf("Question #%d", i+1),
			Answer:     fmt.Sprintf("Answer #%d", i+1),
			Category:   category,
			Difficulty: i%5 + 1,
		}
	}
	return questions
}
