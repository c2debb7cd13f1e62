package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) List() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListByCategory(categoryID int) ([]entity.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Transaction выполняет fn на самом моке, если ожидание не вернуло ошибку
func (m *MockQuestionRepository) Transaction(fn func(repo repository.QuestionRepository) error) error {
	args := m.Called(fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func sampleQuestions(n int, category int) []entity.Question {
	questions := make([]entity.Question, n)
	for i := range questions {
		questions[i] = entity.Question{
			ID:         uint(i + 1),
			Question:   "Question",
			Answer:     "Answer",
			Category:   category,
			Difficulty: 1,
		}
	}
	return questions
}

var sampleCategories = []entity.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}

func newTestService() (*TriviaService, *MockQuestionRepository, *MockCategoryRepository) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	return NewTriviaService(questionRepo, categoryRepo, 10), questionRepo, categoryRepo
}

// ============================================================================
// Категории
// ============================================================================

func TestTriviaService_ListCategoryTypes(t *testing.T) {
	svc, _, categoryRepo := newTestService()
	categoryRepo.On("List").Return(sampleCategories, nil)

	types, err := svc.ListCategoryTypes()

	require.NoError(t, err)
	assert.Equal(t, []string{"Science", "Art"}, types)
	categoryRepo.AssertExpectations(t)
}

func TestTriviaService_ListCategoryTypes_EmptyIsNotFound(t *testing.T) {
	svc, _, categoryRepo := newTestService()
	categoryRepo.On("List").Return([]entity.Category{}, nil)

	types, err := svc.ListCategoryTypes()

	assert.Nil(t, types)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTriviaService_ListCategoryTypes_StorageError(t *testing.T) {
	svc, _, categoryRepo := newTestService()
	dbErr := errors.New("connection reset")
	categoryRepo.On("List").Return(nil, dbErr)

	_, err := svc.ListCategoryTypes()

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

// ============================================================================
// Страницы
// ============================================================================

func TestTriviaService_ListQuestionsPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		wantLen   int
		wantFirst uint
		wantErr   error
	}{
		{name: "first page", total: 25, page: 1, wantLen: 10, wantFirst: 1},
		{name: "last partial page", total: 25, page: 3, wantLen: 5, wantFirst: 21},
		{name: "exact boundary is out of range", total: 20, page: 3, wantErr: apperrors.ErrNotFound},
		{name: "far beyond", total: 5, page: 100, wantErr: apperrors.ErrNotFound},
		{name: "zero page", total: 5, page: 0, wantErr: apperrors.ErrNotFound},
		{name: "negative page", total: 5, page: -3, wantErr: apperrors.ErrNotFound},
		{name: "huge page does not overflow", total: 15, page: 922337203685477582, wantErr: apperrors.ErrNotFound},
		{name: "max int page", total: 15, page: math.MaxInt, wantErr: apperrors.ErrNotFound},
		{name: "no questions", total: 0, page: 1, wantErr: apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, questionRepo, categoryRepo := newTestService()
			questionRepo.On("List").Return(sampleQuestions(tt.total, 1), nil)
			categoryRepo.On("List").Return(sampleCategories, nil)

			// Act
			page, err := svc.ListQuestionsPage(tt.page)

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, page)
				return
			}
			require.NoError(t, err)
			assert.Len(t, page.Questions, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page.Questions[0].ID)
			assert.Equal(t, tt.total, page.Total, "total считается по всем вопросам, а не по странице")
			assert.Equal(t, []string{"Science", "Art"}, page.Categories)
		})
	}
}

func TestTriviaService_ListQuestionsPage_NoCategories(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestService()
	questionRepo.On("List").Return(sampleQuestions(3, 1), nil)
	categoryRepo.On("List").Return([]entity.Category{}, nil)

	_, err := svc.ListQuestionsPage(1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTriviaService_CustomPageSize(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewTriviaService(questionRepo, categoryRepo, 2)
	questionRepo.On("List").Return(sampleQuestions(5, 1), nil)
	categoryRepo.On("List").Return(sampleCategories, nil)

	page, err := svc.ListQuestionsPage(2)

	require.NoError(t, err)
	require.Len(t, page.Questions, 2)
	assert.Equal(t, uint(3), page.Questions[0].ID)
	assert.Equal(t, 10, NewTriviaService(questionRepo, categoryRepo, 0).PageSize())
}

// ============================================================================
// Удаление и создание
// ============================================================================

func TestTriviaService_DeleteQuestion(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	question := &entity.Question{ID: 7}
	questionRepo.On("Transaction", mock.Anything).Return(nil)
	questionRepo.On("GetByID", uint(7)).Return(question, nil)
	questionRepo.On("Delete", uint(7)).Return(nil)

	err := svc.DeleteQuestion(7)

	require.NoError(t, err)
	questionRepo.AssertExpectations(t)
}

func TestTriviaService_DeleteQuestion_MissingIsInternal(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questionRepo.On("Transaction", mock.Anything).Return(nil)
	questionRepo.On("GetByID", uint(404)).Return(nil, apperrors.ErrNotFound)

	err := svc.DeleteQuestion(404)

	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound, "удаление не различает 'не найдено' и внутреннюю ошибку")
	questionRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestTriviaService_DeleteQuestion_TransactionFailure(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questionRepo.On("Transaction", mock.Anything).Return(errors.New("begin failed"))

	err := svc.DeleteQuestion(1)

	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestTriviaService_CreateQuestion(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	question := &entity.Question{Question: "q", Answer: "a", Category: 1, Difficulty: 2}
	questionRepo.On("Transaction", mock.Anything).Return(nil)
	questionRepo.On("Create", question).Return(nil)

	require.NoError(t, svc.CreateQuestion(question))
	questionRepo.AssertExpectations(t)
}

func TestTriviaService_CreateQuestion_StorageErrorIsInternal(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	question := &entity.Question{Question: "q"}
	questionRepo.On("Transaction", mock.Anything).Return(nil)
	questionRepo.On("Create", question).Return(errors.New("not null violation"))

	err := svc.CreateQuestion(question)

	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

// ============================================================================
// Поиск
// ============================================================================

func TestTriviaService_SearchQuestions(t *testing.T) {
	corpus := []entity.Question{
		{ID: 1, Question: "What is the largest COUNTRY?"},
		{ID: 2, Question: "Who painted the Mona Lisa?"},
		{ID: 3, Question: "Which country hosted the 1930 World Cup?"},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []uint
		wantErr error
	}{
		{name: "case insensitive", term: "Country", wantIDs: []uint{1, 3}},
		{name: "trimmed", term: "  mona  ", wantIDs: []uint{2}},
		{name: "no matches is not an error", term: "quantum", wantIDs: []uint{}},
		{name: "blank term", term: "   ", wantErr: apperrors.ErrValidation},
		{name: "empty term", term: "", wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, questionRepo, _ := newTestService()
			questionRepo.On("List").Return(corpus, nil)

			matches, err := svc.SearchQuestions(tt.term)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				questionRepo.AssertNotCalled(t, "List")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, matches)
			ids := make([]uint, 0, len(matches))
			for _, q := range matches {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTriviaService_SearchQuestions_EmptyCorpus(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questionRepo.On("List").Return([]entity.Question{}, nil)

	_, err := svc.SearchQuestions("anything")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// ============================================================================
// Категории и викторина
// ============================================================================

func TestTriviaService_QuestionsByCategory_AppliesOffset(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questionRepo.On("ListByCategory", 1).Return(sampleQuestions(2, 1), nil)

	questions, err := svc.QuestionsByCategory(0)

	require.NoError(t, err)
	assert.Len(t, questions, 2)
	questionRepo.AssertExpectations(t)
}

func TestTriviaService_QuestionsByCategory_EmptyIsNotFound(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questionRepo.On("ListByCategory", 6).Return([]entity.Question{}, nil)

	_, err := svc.QuestionsByCategory(5)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTriviaService_PlayQuiz(t *testing.T) {
	questions := sampleQuestions(3, 2)

	tests := []struct {
		name     string
		previous []interface{}
		pick     int
		wantID   uint
		wantNil  bool
	}{
		{name: "fresh question", previous: []interface{}{}, pick: 1, wantID: 2},
		{name: "other ids shown", previous: []interface{}{float64(1), float64(3)}, pick: 1, wantID: 2},
		{name: "drawn id in list is not a match", previous: []interface{}{float64(2)}, pick: 1, wantID: 2},
		{name: "drawn object already shown", previous: []interface{}{questions[0].Fields()}, pick: 0, wantNil: true},
		{name: "other object shown", previous: []interface{}{questions[0].Fields()}, pick: 2, wantID: 3},
		{name: "unrelated values ignored", previous: []interface{}{"2", nil, true}, pick: 1, wantID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, questionRepo, _ := newTestService()
			svc.WithPicker(func(n int) int {
				assert.Equal(t, len(questions), n, "выбор идёт по всей категории")
				return tt.pick
			})
			questionRepo.On("ListByCategory", 2).Return(questions, nil)

			// Act
			question, err := svc.PlayQuiz(tt.previous, 1)

			// Assert
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, question)
				return
			}
			require.NotNil(t, question)
			assert.Equal(t, tt.wantID, question.ID)
		})
	}
}

func TestTriviaService_PlayQuiz_EmptyCategory(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questionRepo.On("ListByCategory", 100).Return([]entity.Question{}, nil)

	question, err := svc.PlayQuiz(nil, 99)

	assert.Nil(t, question)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTriviaService_PlayQuiz_DefaultPickerStaysInRange(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questions := sampleQuestions(4, 3)
	questionRepo.On("ListByCategory", 3).Return(questions, nil)

	for i := 0; i < 50; i++ {
		question, err := svc.PlayQuiz(nil, 2)
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Contains(t, questions, *question)
	}
}

func TestTriviaService_ListAllQuestions(t *testing.T) {
	svc, questionRepo, _ := newTestService()
	questionRepo.On("List").Return([]entity.Question{}, nil).Once()
	questionRepo.On("List").Return(sampleQuestions(2, 1), nil).Once()

	_, err := svc.ListAllQuestions()
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	questions, err := svc.ListAllQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}
