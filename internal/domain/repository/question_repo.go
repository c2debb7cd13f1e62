package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// List возвращает все вопросы в порядке хранения (по id)
	List() ([]entity.Question, error)
	// ListByCategory возвращает вопросы с category, точно равной categoryID
	ListByCategory(categoryID int) ([]entity.Question, error)
	// GetByID возвращает вопрос или apperrors.ErrNotFound
	GetByID(id uint) (*entity.Question, error)
	Create(question *entity.Question) error
	// Delete удаляет вопрос; отсутствие строки ошибкой не считается
	Delete(id uint) error

	// Transaction выполняет fn как единицу работы: commit при nil, rollback при ошибке или панике.
	// Внутри fn нужно использовать только переданный репозиторий.
	Transaction(fn func(repo QuestionRepository) error) error
}
