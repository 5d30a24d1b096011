package bins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	binRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/bin"
)

// Service реестр бинов: авторитетный владелец физического статуса каждого бина.
// Статус перезаписывается безусловно - легальность перехода контролирует
// слой бронирований, а не реестр.
type Service struct {
	binRepo BinRepository
	logger  Logger
}

// NewService создает новый экземпляр реестра бинов
func NewService(binRepo BinRepository, logger Logger) *Service {
	return &Service{
		binRepo: binRepo,
		logger:  logger,
	}
}

// CreateBinRequest запрос на добавление бина в инвентарь
type CreateBinRequest struct {
	BinNumber   string
	Size        string
	Condition   domain.BinCondition
	Location    string
	LastService *time.Time
	Notes       *string
}

// Create добавляет новый бин в инвентарь в статусе available
func (s *Service) Create(ctx context.Context, req *CreateBinRequest) (*domain.Bin, error) {
	s.logger.Info("Create: adding bin number=%s size=%s", req.BinNumber, req.Size)

	if req.BinNumber == "" {
		return nil, fmt.Errorf("%w: bin number is required", ErrInvalidInput)
	}
	if len(req.BinNumber) > domain.MaxBinNumberLength {
		return nil, fmt.Errorf("%w: bin number is too long", ErrInvalidInput)
	}
	if req.Size == "" {
		return nil, fmt.Errorf("%w: size is required", ErrInvalidInput)
	}

	condition := req.Condition
	if condition == "" {
		condition = domain.ConditionExcellent
	}
	if !domain.ValidBinCondition(condition) {
		return nil, fmt.Errorf("%w: unknown condition %q", ErrInvalidInput, condition)
	}

	bin := &domain.Bin{
		BinNumber:   req.BinNumber,
		Size:        req.Size,
		Status:      domain.BinStatusAvailable,
		Condition:   condition,
		Location:    req.Location,
		LastService: req.LastService,
		Notes:       req.Notes,
	}

	created, err := s.binRepo.Create(ctx, bin)
	if err != nil {
		if errors.Is(err, binRepo.ErrDuplicateBinNumber) {
			s.logger.Warn("Create: bin number=%s already exists", req.BinNumber)
			return nil, ErrDuplicateBinNumber
		}
		s.logger.Error("Create: repository error for bin number=%s: %v", req.BinNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully added bin number=%s id=%d", created.BinNumber, created.ID)
	return created, nil
}

// GetByNumber получает бин по бизнес-номеру
func (s *Service) GetByNumber(ctx context.Context, binNumber string) (*domain.Bin, error) {
	bin, err := s.binRepo.GetByNumber(ctx, binNumber)
	if err != nil {
		if errors.Is(err, binRepo.ErrBinNotFound) {
			return nil, ErrBinNotFound
		}
		s.logger.Error("GetByNumber: repository error for bin number=%s: %v", binNumber, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}
	return bin, nil
}

// SetStatus безусловно перезаписывает статус бина.
// Операция идемпотентна - повтор с тем же статусом безопасен.
func (s *Service) SetStatus(ctx context.Context, binNumber string, status domain.BinStatus) (*domain.Bin, error) {
	s.logger.Info("SetStatus: bin number=%s -> status=%s", binNumber, status)

	if !domain.ValidBinStatus(status) {
		s.logger.Warn("SetStatus: invalid status=%s for bin number=%s", status, binNumber)
		return nil, ErrInvalidStatus
	}

	if err := s.binRepo.UpdateStatus(ctx, binNumber, status); err != nil {
		if errors.Is(err, binRepo.ErrBinNotFound) {
			s.logger.Warn("SetStatus: bin number=%s not found", binNumber)
			return nil, ErrBinNotFound
		}
		s.logger.Error("SetStatus: repository error for bin number=%s: %v", binNumber, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	bin, err := s.binRepo.GetByNumber(ctx, binNumber)
	if err != nil {
		s.logger.Error("SetStatus: failed to re-read bin number=%s: %v", binNumber, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: bin number=%s is now %s", binNumber, bin.Status)
	return bin, nil
}

// List получает список бинов с фильтрацией по статусу, размеру и тексту
func (s *Service) List(ctx context.Context, filter domain.BinFilter) ([]*domain.Bin, error) {
	if filter.Status != nil && !domain.ValidBinStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *filter.Status)
	}

	bins, err := s.binRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return bins, nil
}
