package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/service"
)

// Ключи контекста, заполняемые middleware.ExtractUintParam
const (
	QuestionIDKey = "questionID"
	CategoryIDKey = "categoryID"
)

// TriviaHandler обрабатывает запросы к вопросам, категориям и викторине.
// Ошибки передаются в c.Error и отрисовываются middleware.ErrorResponder.
type TriviaHandler struct {
	triviaService *service.TriviaService
}

// NewTriviaHandler создает новый обработчик
func NewTriviaHandler(triviaService *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{triviaService: triviaService}
}

// ListCategories обрабатывает GET /categories
func (h *TriviaHandler) ListCategories(c *gin.Context) {
	types, err := h.triviaService.ListCategoryTypes()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: types})
}

// ListQuestions обрабатывает GET /questions?page=N
func (h *TriviaHandler) ListQuestions(c *gin.Context) {
	page, err := parsePage(c.DefaultQuery("page", "1"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.triviaService.ListQuestionsPage(page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsPageResponse{
		Success:        true,
		Questions:      dto.NewQuestionListResponse(result.Questions),
		TotalQuestions: result.Total,
		Categories:     result.Categories,
	})
}

// DeleteQuestion обрабатывает DELETE /questions/:id
func (h *TriviaHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet(QuestionIDKey).(uint)

	if err := h.triviaService.DeleteQuestion(questionID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Status: dto.StatusQuestionDeleted})
}

// CreateQuestion обрабатывает POST /questions.
// Любая ошибка, включая неверное тело, отдается как 500.
func (h *TriviaHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: invalid question body: %v", apperrors.ErrInternal, err))
		return
	}

	question := &entity.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   req.Category.Int(),
		Difficulty: req.Difficulty.Int(),
	}
	if err := h.triviaService.CreateQuestion(question); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Status: dto.StatusQuestionAdded})
}

// SearchQuestions обрабатывает POST /questions/search
func (h *TriviaHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	questions, err := h.triviaService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsResponse{Success: true, Questions: dto.NewQuestionListResponse(questions)})
}

// QuestionsByCategory обрабатывает GET /categories/:id/questions
func (h *TriviaHandler) QuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet(CategoryIDKey).(uint)

	questions, err := h.triviaService.QuestionsByCategory(int(categoryID))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsResponse{Success: true, Questions: dto.NewQuestionListResponse(questions)})
}

// PlayQuiz обрабатывает POST /quizzes
func (h *TriviaHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	question, err := h.triviaService.PlayQuiz(req.PreviousQuestions, req.QuizCategory.ID.Int())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question))
}
