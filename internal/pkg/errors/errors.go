package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrBadRequest используется, когда тело запроса не удалось разобрать (битый JSON).
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для семантически неверных входных данных (например, пустой поисковый запрос).
	ErrValidation = errors.New("validation failed")

	// ErrInternal используется для любых ошибок хранилища и сбоев единицы работы.
	// Сюда же попадают "не найдено" при удалении и отсутствующие поля при создании вопроса.
	ErrInternal = errors.New("internal server error")
)
