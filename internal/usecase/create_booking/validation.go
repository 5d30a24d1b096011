package create_booking

import (
	"fmt"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Валидация выполняется до любой записи - при ошибке хранилища не трогаем.
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}

	if req.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total amount must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}
