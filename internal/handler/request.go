package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// FlexInt целое число, которое клиент может прислать числом или строкой ("3").
// Дробные числа отбрасывают дробную часть.
type FlexInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		*f = FlexInt(n)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid integer %s: %w", data, err)
	}
	if math.IsNaN(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return fmt.Errorf("integer out of range: %s", data)
	}
	*f = FlexInt(int(n))
	return nil
}

// Int возвращает значение как int
func (f *FlexInt) Int() int {
	return int(*f)
}

// CreateQuestionRequest тело POST /questions
type CreateQuestionRequest struct {
	Question   *string  `json:"question" binding:"required"`
	Answer     *string  `json:"answer" binding:"required"`
	Category   *FlexInt `json:"category" binding:"required"`
	Difficulty *FlexInt `json:"difficulty" binding:"required"`
}

// SearchQuestionsRequest тело POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}

// QuizCategory категория викторины; кроме id клиент может прислать и другие поля (type)
type QuizCategory struct {
	ID *FlexInt `json:"id" binding:"required"`
}

// PlayQuizRequest тело POST /quizzes.
// Элементы previous_questions - объекты вопросов в форме ответа API; прочие значения принимаются, но не совпадают ни с одним вопросом.
type PlayQuizRequest struct {
	PreviousQuestions []interface{} `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

// bindJSON разбирает тело запроса.
// Синтаксически неверный или пустой JSON - ErrBadRequest, отсутствующие поля и неверные типы - ErrInternal.
func bindJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: malformed JSON body: %v", apperrors.ErrBadRequest, err)
	}
	return fmt.Errorf("%w: invalid request body: %v", apperrors.ErrInternal, err)
}

// parsePage разбирает номер страницы.
// Нечисловое значение означает первую страницу, число вне диапазона int - ErrNotFound.
// Проверку page < 1 выполняет сервис.
func parsePage(raw string) (int, error) {
	page, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("page %q is out of range: %w", raw, apperrors.ErrNotFound)
		}
		return 1, nil
	}
	return int(page), nil
}
