package customers

import (
	"context"
	"fmt"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	s.logger.Info("Create: adding customer company=%s", c.CompanyName)

	if c.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	if len(c.CompanyName) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: company name is too long", ErrInvalidInput)
	}

	created, err := s.customerRepo.Create(ctx, c)
	if err != nil {
		s.logger.Error("Create: repository error for company=%s: %v", c.CompanyName, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully added customer company=%s id=%d", created.CompanyName, created.ID)
	return created, nil
}

// List получает клиентов с опциональным текстовым поиском
func (s *Service) List(ctx context.Context, text *string) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx, text)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return customers, nil
}
