package dto

import (
	"net/http"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// Статусы успешных операций в теле ответа
const (
	StatusQuestionDeleted = "question deleted"
	StatusQuestionAdded   = "Question added"
	StatusOK              = "ok"
)

// Сообщения об ошибках, которые видит клиент
var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not found",
	http.StatusUnprocessableEntity: "The request can't be processed",
	http.StatusInternalServerError: "Server Error",
}

// QuestionResponse представляет вопрос в ответе API
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoriesResponse ответ GET /categories
type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

// QuestionsPageResponse ответ GET /questions
type QuestionsPageResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     []string           `json:"categories"`
}

// QuestionsResponse ответ поиска и выборки по категории
type QuestionsResponse struct {
	Success   bool               `json:"success"`
	Questions []QuestionResponse `json:"questions"`
}

// QuizResponse ответ POST /quizzes.
// Question содержит QuestionResponse или пустую строку, если выпал уже показанный вопрос.
type QuizResponse struct {
	Success  bool        `json:"success"`
	Question interface{} `json:"question"`
}

// StatusResponse ответ операций без данных (удаление, создание, health)
type StatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// ErrorResponse единый конверт ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewQuestionResponse создает DTO из сущности
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionListResponse конвертирует список; пустой список остаётся [] в JSON
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, NewQuestionResponse(&questions[i]))
	}
	return result
}

// NewQuizResponse создает ответ викторины; nil означает пустую заглушку
func NewQuizResponse(q *entity.Question) QuizResponse {
	if q == nil {
		return QuizResponse{Success: true, Question: ""}
	}
	return QuizResponse{Success: true, Question: NewQuestionResponse(q)}
}

// NewErrorResponse создает конверт ошибки для статуса.
// Неизвестные статусы отображаются как 500.
func NewErrorResponse(status int) ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = errorMessages[status]
	}
	return ErrorResponse{Success: false, Error: status, Message: message}
}
