package entity

import (
	"strings"
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"not null;index" json:"category"` // Ссылка на categories.id без внешнего ключа
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// ContainsTerm проверяет, входит ли term в текст вопроса без учёта регистра.
// term должен быть уже приведён к нижнему регистру.
func (q *Question) ContainsTerm(term string) bool {
	return strings.Contains(strings.ToLower(q.Question), term)
}

// Fields возвращает представление вопроса в виде map, совпадающее с JSON-формой ответа.
// Числа хранятся как float64, как после json.Unmarshal в interface{}.
func (q *Question) Fields() map[string]interface{} {
	return map[string]interface{}{
		"id":         float64(q.ID),
		"question":   q.Question,
		"answer":     q.Answer,
		"category":   float64(q.Category),
		"difficulty": float64(q.Difficulty),
	}
}
