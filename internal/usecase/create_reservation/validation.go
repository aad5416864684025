package create_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
// Бизнес-правила дат проверяет валидатор правил; здесь только
// структурная корректность запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if req.GuestEmail == "" {
		return fmt.Errorf("%w: guestEmail is required", ErrInvalidInput)
	}

	if req.Adults <= 0 {
		return fmt.Errorf("%w: adults must be positive", ErrInvalidInput)
	}

	if req.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	return nil
}
