package booking_webhook

import (
	"errors"
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	createBooking "github.com/vkrnv/SBR-OperationsService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidBinNumber   = "Invalid bin_number"
	msgBinAlreadyBooked   = "bin is already assigned to an active booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhook/bookings
//
// Эндпоинт для внешней системы приема заказов. В отличие от внутреннего
// создания бронирования, bin_number здесь обязателен, а несуществующий бин -
// это 400, не 404: внешняя система прислала невалидный payload.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhook/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BinNumber == "" {
		h.logger.Warn("POST /webhook/bookings - Missing bin_number")
		handlers.RespondBadRequest(w, msgInvalidBinNumber)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /webhook/bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	res, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBinNotFound):
			h.logger.Warn("POST /webhook/bookings - Unknown bin: %s", req.BinNumber)
			handlers.RespondBadRequest(w, msgInvalidBinNumber)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /webhook/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrBinAlreadyBooked):
			h.logger.Warn("POST /webhook/bookings - Bin already booked: %s", req.BinNumber)
			handlers.RespondConflict(w, msgBinAlreadyBooked)

		default:
			h.logger.Error("POST /webhook/bookings - Failed to create booking: bin=%s, error=%v", req.BinNumber, err)
			// Внешняя система пишет тело ответа себе в лог, поэтому отдаем
			// причину отказа, а не обезличенное сообщение
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.logger.Info("POST /webhook/bookings - Booking created: booking_number=%s, bin=%s",
		res.Booking.BookingNumber, req.BinNumber)
	handlers.RespondJSON(w, http.StatusCreated, WebhookResponse{
		Success:       true,
		BookingID:     res.Booking.ID,
		BookingNumber: res.Booking.BookingNumber,
		Status:        string(res.Booking.Status),
	})
}
