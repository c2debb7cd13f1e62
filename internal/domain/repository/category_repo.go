package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории создаются только миграциями, поэтому через API доступно лишь чтение.
type CategoryRepository interface {
	List() ([]entity.Category, error)
}
