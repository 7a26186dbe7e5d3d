// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// CheckRequest Запрос на оценку пароля
type CheckRequest struct {
	// Password Проверяемый пароль, пустая строка допустима, не длиннее 4096 символов (code points)
	Password string `json:"password" validate:"max=4096"`
}

// CheckResponse Результат оценки пароля
type CheckResponse struct {
	// Entropy Оценка энтропии в битах
	Entropy float64 `json:"entropy"`

	// Length Длина пароля в символах
	Length int `json:"length"`

	// Score Нормализованная оценка 0..100
	Score int `json:"score"`

	// Rating Качественная оценка
	Rating string `json:"rating"`

	// Common Пароль найден в словаре распространённых паролей
	Common bool `json:"common"`

	// Mode local или authoritative
	Mode string `json:"mode"`

	// Suggestions Подсказки по улучшению пароля
	Suggestions []string `json:"suggestions"`

	// Warning Предупреждение для распространённых паролей
	Warning string `json:"warning,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
