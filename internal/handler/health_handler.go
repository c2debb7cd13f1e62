package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// Pinger проверяет доступность хранилища
type Pinger func() error

// HealthHandler обрабатывает GET /health
type HealthHandler struct {
	ping Pinger
}

// NewHealthHandler создает новый обработчик проверки состояния
func NewHealthHandler(ping Pinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health отвечает ok, если база отвечает на ping
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(); err != nil {
		_ = c.Error(fmt.Errorf("%w: database ping failed: %v", apperrors.ErrInternal, err))
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Status: dto.StatusOK})
}
