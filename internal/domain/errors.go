package domain

import "errors"

var (
	// ErrNotFound возвращается update/delete, если сущности нет по запрошенному ID.
	// Единственная ошибка, которую HTTP-слой различает (404); остальное — 500.
	ErrNotFound = errors.New("entity not found")
	// ErrValidation — входные данные не прошли проверку (например, неизвестный статус заказа).
	ErrValidation = errors.New("validation failed")
	// ErrConfig — переменная окружения не разобралась в ожидаемый тип.
	ErrConfig = errors.New("invalid configuration")
)

// IsNotFound проверяет, является ли ошибка отсутствием сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
