package entity

// Category представляет категорию вопросов
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type;type:text;not null" json:"type"` // Отображаемое имя, например "Science"
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryTypes возвращает имена категорий в исходном порядке
func CategoryTypes(categories []Category) []string {
	types := make([]string, len(categories))
	for i, c := range categories {
		types[i] = c.Type
	}
	return types
}
