package postgres

import (
	"fmt"

	"github.com/yourusername/trivia-questions/pkg/database"
)

// annotate добавляет к ошибке имя операции и SQLSTATE, если драйвер его сообщил
func annotate(op string, err error) error {
	if code := database.SQLState(err); code != "" {
		return fmt.Errorf("%s failed (sqlstate %s): %w", op, code, err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
