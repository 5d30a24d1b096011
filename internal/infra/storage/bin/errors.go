package bin

import "errors"

var (
	// ErrBinNotFound возвращается, когда бин не найден
	ErrBinNotFound = errors.New("bin.repository: bin not found")

	// ErrDuplicateBinNumber возвращается при попытке создать бин с уже существующим номером
	ErrDuplicateBinNumber = errors.New("bin.repository: bin number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bin.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bin.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bin.repository: failed to scan row")
)
