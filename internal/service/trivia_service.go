package service

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// categoryOffset прибавляется к id категории из запроса перед фильтрацией.
// Клиенты нумеруют категории с нуля, в базе они начинаются с 1.
const categoryOffset = 1

// DefaultQuestionsPerPage размер страницы, если он не задан в конфигурации
const DefaultQuestionsPerPage = 10

// QuestionsPage одна страница списка вопросов
type QuestionsPage struct {
	Questions  []entity.Question
	Total      int
	Categories []string
}

// TriviaService предоставляет методы для работы с вопросами и категориями
type TriviaService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	pageSize     int
	pick         func(n int) int
}

// NewTriviaService создает новый сервис вопросов
func NewTriviaService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	pageSize int,
) *TriviaService {
	if pageSize < 1 {
		pageSize = DefaultQuestionsPerPage
	}
	return &TriviaService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pageSize:     pageSize,
		pick:         rand.Intn,
	}
}

// WithPicker подменяет генератор случайного индекса (для тестов)
func (s *TriviaService) WithPicker(pick func(n int) int) *TriviaService {
	s.pick = pick
	return s
}

// PageSize возвращает размер страницы
func (s *TriviaService) PageSize() int {
	return s.pageSize
}

// ListCategoryTypes возвращает названия всех категорий в порядке хранения
func (s *TriviaService) ListCategoryTypes() ([]string, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories: %w", apperrors.ErrNotFound)
	}
	return entity.CategoryTypes(categories), nil
}

// ListQuestionsPage возвращает страницу page (нумерация с 1).
// Страница вне диапазона [1, число страниц] дает ErrNotFound.
func (s *TriviaService) ListQuestionsPage(page int) (*QuestionsPage, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(questions) == 0 || len(categories) == 0 {
		return nil, fmt.Errorf("no questions or categories: %w", apperrors.ErrNotFound)
	}

	// Сравниваем с числом страниц до умножения, чтобы (page-1)*size не переполнялось
	pages := (len(questions) + s.pageSize - 1) / s.pageSize
	if page < 1 || page > pages {
		return nil, fmt.Errorf("page %d is out of range: %w", page, apperrors.ErrNotFound)
	}
	start := (page - 1) * s.pageSize
	end := min(start+s.pageSize, len(questions))

	return &QuestionsPage{
		Questions:  questions[start:end],
		Total:      len(questions),
		Categories: entity.CategoryTypes(categories),
	}, nil
}

// DeleteQuestion удаляет вопрос в одной транзакции.
// Любая ошибка, включая отсутствие вопроса, возвращается как ErrInternal.
func (s *TriviaService) DeleteQuestion(id uint) error {
	err := s.questionRepo.Transaction(func(tx repository.QuestionRepository) error {
		question, err := tx.GetByID(id)
		if err != nil {
			return err
		}
		return tx.Delete(question.ID)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to delete question %d: %v", apperrors.ErrInternal, id, err)
	}
	return nil
}

// CreateQuestion сохраняет новый вопрос; id присваивает база
func (s *TriviaService) CreateQuestion(question *entity.Question) error {
	err := s.questionRepo.Transaction(func(tx repository.QuestionRepository) error {
		return tx.Create(question)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create question: %v", apperrors.ErrInternal, err)
	}
	return nil
}

// SearchQuestions ищет вопросы, текст которых содержит term без учёта регистра
func (s *TriviaService) SearchQuestions(term string) ([]entity.Question, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, fmt.Errorf("empty search term: %w", apperrors.ErrValidation)
	}

	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions: %w", apperrors.ErrNotFound)
	}

	// Пустой результат поиска ошибкой не является
	matches := make([]entity.Question, 0)
	for i := range questions {
		if questions[i].ContainsTerm(term) {
			matches = append(matches, questions[i])
		}
	}
	return matches, nil
}

// QuestionsByCategory возвращает вопросы категории categoryID (с учётом смещения)
func (s *TriviaService) QuestionsByCategory(categoryID int) ([]entity.Question, error) {
	questions, err := s.questionRepo.ListByCategory(categoryID + categoryOffset)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions by category: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions in category %d: %w", categoryID, apperrors.ErrNotFound)
	}
	return questions, nil
}

// PlayQuiz выбирает случайный вопрос категории.
// Выбор идёт по всей категории; если выпал уже показанный вопрос, возвращается nil
// и повторной попытки не делается.
func (s *TriviaService) PlayQuiz(previous []interface{}, categoryID int) (*entity.Question, error) {
	questions, err := s.questionRepo.ListByCategory(categoryID + categoryOffset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions in category %d: %w", categoryID, apperrors.ErrNotFound)
	}

	drawn := questions[s.pick(len(questions))]
	if wasShown(previous, &drawn) {
		return nil, nil
	}
	return &drawn, nil
}

// ListAllQuestions возвращает все вопросы для выгрузки
func (s *TriviaService) ListAllQuestions() ([]entity.Question, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions: %w", apperrors.ErrNotFound)
	}
	return questions, nil
}

// wasShown проверяет, есть ли вопрос в списке уже показанных.
// Совпадением считается только объект, равный JSON-форме вопроса; числа (id) не сравниваются.
func wasShown(previous []interface{}, question *entity.Question) bool {
	fields := question.Fields()
	for _, item := range previous {
		if v, ok := item.(map[string]interface{}); ok && reflect.DeepEqual(v, fields) {
			return true
		}
	}
	return false
}
