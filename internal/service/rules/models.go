package rules

// ValidationResult результат проверки дат бронирования
// Valid равен true только когда не нарушено ни одно правило.
// Errors содержит все нарушенные правила, а не только первое.
type ValidationResult struct {
	Valid  bool
	Errors []string
}
