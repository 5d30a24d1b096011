package bins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	binRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/bin"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBinRepo struct {
	createFn func(ctx context.Context, b *domain.Bin) (*domain.Bin, error)
	getFn    func(ctx context.Context, binNumber string) (*domain.Bin, error)
	updateFn func(ctx context.Context, binNumber string, status domain.BinStatus) error
	listFn   func(ctx context.Context, filter domain.BinFilter) ([]*domain.Bin, error)
}

func (f *fakeBinRepo) Create(ctx context.Context, b *domain.Bin) (*domain.Bin, error) {
	return f.createFn(ctx, b)
}

func (f *fakeBinRepo) GetByNumber(ctx context.Context, binNumber string) (*domain.Bin, error) {
	return f.getFn(ctx, binNumber)
}

func (f *fakeBinRepo) UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error {
	return f.updateFn(ctx, binNumber, status)
}

func (f *fakeBinRepo) List(ctx context.Context, filter domain.BinFilter) ([]*domain.Bin, error) {
	return f.listFn(ctx, filter)
}

func TestCreate_Defaults(t *testing.T) {
	repo := &fakeBinRepo{createFn: func(ctx context.Context, b *domain.Bin) (*domain.Bin, error) {
		created := *b
		created.ID = 1
		return &created, nil
	}}
	svc := NewService(repo, nopLogger{})

	bin, err := svc.Create(context.Background(), &CreateBinRequest{
		BinNumber: "SB-001",
		Size:      "6m3",
	})

	require.NoError(t, err)
	// Новый бин входит в пул свободным и в отличном состоянии
	assert.Equal(t, domain.BinStatusAvailable, bin.Status)
	assert.Equal(t, domain.ConditionExcellent, bin.Condition)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeBinRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &CreateBinRequest{Size: "6m3"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &CreateBinRequest{BinNumber: "SB-001"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &CreateBinRequest{
		BinNumber: "SB-001",
		Size:      "6m3",
		Condition: "pristine",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateBinNumber(t *testing.T) {
	repo := &fakeBinRepo{createFn: func(ctx context.Context, b *domain.Bin) (*domain.Bin, error) {
		return nil, binRepo.ErrDuplicateBinNumber
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &CreateBinRequest{
		BinNumber: "SB-001",
		Size:      "6m3",
	})

	require.ErrorIs(t, err, ErrDuplicateBinNumber)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	repo := &fakeBinRepo{updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
		t.Fatal("repository must not be touched for unknown status")
		return nil
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.SetStatus(context.Background(), "SB-001", "lost")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus_ReturnsUpdatedBin(t *testing.T) {
	repo := &fakeBinRepo{
		updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
			return nil
		},
		getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
			return &domain.Bin{BinNumber: n, Status: domain.BinStatusMaintenance}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	bin, err := svc.SetStatus(context.Background(), "SB-001", domain.BinStatusMaintenance)

	require.NoError(t, err)
	assert.Equal(t, domain.BinStatusMaintenance, bin.Status)
}

func TestSetStatus_NotFound(t *testing.T) {
	repo := &fakeBinRepo{updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
		return binRepo.ErrBinNotFound
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.SetStatus(context.Background(), "SB-404", domain.BinStatusAvailable)
	require.ErrorIs(t, err, ErrBinNotFound)
}

func TestList_RejectsUnknownStatusFilter(t *testing.T) {
	svc := NewService(&fakeBinRepo{}, nopLogger{})

	status := domain.BinStatus("lost")
	_, err := svc.List(context.Background(), domain.BinFilter{Status: &status})
	require.ErrorIs(t, err, ErrInvalidInput)
}
