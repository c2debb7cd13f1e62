// Package router собирает gin.Engine со всеми маршрутами и middleware.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yourusername/trivia-questions/internal/handler"
	"github.com/yourusername/trivia-questions/internal/middleware"
)

// Deps зависимости роутера
type Deps struct {
	Logger        zerolog.Logger
	AllowOrigins  []string
	TriviaHandler *handler.TriviaHandler
	HealthHandler *handler.HealthHandler
}

// New создает роутер. Неизвестные маршруты и методы отдают конверт 404.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = false

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORSHeaders(deps.AllowOrigins),
		middleware.CORS(deps.AllowOrigins),
		middleware.ErrorResponder(deps.Logger),
	)
	r.NoRoute(middleware.NoRoute)

	r.GET("/health", deps.HealthHandler.Health)

	r.GET("/categories", deps.TriviaHandler.ListCategories)
	r.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", handler.CategoryIDKey),
		deps.TriviaHandler.QuestionsByCategory,
	)

	r.GET("/questions", deps.TriviaHandler.ListQuestions)
	r.POST("/questions", deps.TriviaHandler.CreateQuestion)
	r.GET("/questions/export", deps.TriviaHandler.ExportQuestions)
	r.POST("/questions/search", deps.TriviaHandler.SearchQuestions)
	r.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", handler.QuestionIDKey),
		deps.TriviaHandler.DeleteQuestion,
	)

	r.POST("/quizzes", deps.TriviaHandler.PlayQuiz)

	return r
}
