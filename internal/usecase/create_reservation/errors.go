package create_reservation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ValidationError ошибка нарушения бизнес-правил бронирования
// Содержит полный список нарушений для структурированного ответа клиенту
type ValidationError struct {
	Violations []string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_reservation: booking rules violated: %s", strings.Join(e.Violations, "; "))
}
