package entity

// CheckMode вариант проверки
type CheckMode string

const (
	// ModeLocal мгновенная оценка без словаря
	ModeLocal CheckMode = "local"
	// ModeAuthoritative оценка со сверкой по словарю распространённых паролей
	ModeAuthoritative CheckMode = "authoritative"
)

const CommonPasswordWarning = "Avoid common passwords (e.g., 'password', '123456')."

// Report результат проверки, отдаваемый наружу
type Report struct {
	ScoreResult

	Common  bool
	Mode    CheckMode
	Warning string
}
