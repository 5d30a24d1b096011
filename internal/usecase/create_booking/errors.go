package create_booking

import "errors"

var (
	// ErrBinNotFound возвращается, когда указанный bin_number не найден в реестре
	ErrBinNotFound = errors.New("create_booking: bin not found")

	// ErrBinAlreadyBooked возвращается, когда бин уже удерживается другим
	// активным бронированием
	ErrBinAlreadyBooked = errors.New("create_booking: bin is held by another active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
