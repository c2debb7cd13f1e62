package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// List возвращает все вопросы
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, annotate("list questions", err)
	}
	return questions, nil
}

// ListByCategory возвращает вопросы категории
func (r *QuestionRepo) ListByCategory(categoryID int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, annotate("list questions by category", err)
	}
	return questions, nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, annotate("get question", err)
	}
	return &question, nil
}

// Create создает новый вопрос, ID заполняется базой
func (r *QuestionRepo) Create(question *entity.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return annotate("create question", err)
	}
	return nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	if err := r.db.Delete(&entity.Question{}, id).Error; err != nil {
		return annotate("delete question", err)
	}
	return nil
}

// Transaction выполняет fn в транзакции GORM.
// GORM сам делает rollback при ошибке или панике и возвращает соединение в пул.
func (r *QuestionRepo) Transaction(fn func(repo repository.QuestionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&QuestionRepo{db: tx})
	})
}
