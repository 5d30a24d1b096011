package booking_webhook

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	createBooking "github.com/vkrnv/SBR-OperationsService/internal/usecase/create_booking"
)

// WebhookRequest входящий платеж внешней системы бронирования.
// Размер бина, локация и сумма не передаются: размер выводится из
// назначенного бина, остальное дозаполняет оператор.
type WebhookRequest struct {
	BinNumber    string `json:"bin_number"`
	CustomerName string `json:"customer_name"`
	StartDate    string `json:"start_date"` // "2006-01-02"
	EndDate      string `json:"end_date"`   // "2006-01-02"
}

// WebhookResponse HTTP response model
type WebhookResponse struct {
	Success       bool   `json:"success"`
	BookingID     int64  `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	Status        string `json:"status"`
}

// ToUseCaseRequest конвертирует входящий платеж в модель usecase
func (r *WebhookRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	binNumber := r.BinNumber

	return &createBooking.Request{
		CustomerName: r.CustomerName,
		BinNumber:    &binNumber,
		StartDate:    start,
		EndDate:      end,
	}, nil
}
