package bins

import "errors"

var (
	// ErrBinNotFound возвращается, когда бин не найден
	ErrBinNotFound = errors.New("bins: bin not found")

	// ErrDuplicateBinNumber возвращается при создании бина с уже существующим номером
	ErrDuplicateBinNumber = errors.New("bins: bin number already exists")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("bins: invalid bin status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bins: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bins: internal error")
)
