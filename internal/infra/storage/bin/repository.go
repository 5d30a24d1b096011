package bin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/pkg/dbmetrics"
	"github.com/vkrnv/SBR-OperationsService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

var binColumns = []string{
	"id",
	"bin_number",
	"size",
	"status",
	"condition",
	"location",
	"last_service",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бинами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бинов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый бин. Возвращает ErrDuplicateBinNumber,
// если бин с таким номером уже существует.
func (r *Repository) Create(ctx context.Context, b *domain.Bin) (*domain.Bin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bins").
		Columns(
			"bin_number",
			"size",
			"status",
			"condition",
			"location",
			"last_service",
			"notes",
		).
		Values(
			b.BinNumber,
			b.Size,
			b.Status,
			b.Condition,
			b.Location,
			b.LastService,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateBinNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByNumber получает бин по бизнес-номеру
func (r *Repository) GetByNumber(ctx context.Context, binNumber string) (*domain.Bin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(binColumns...).
		From("bins").
		Where(squirrel.Eq{"bin_number": binNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBin(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBinNotFound
		}
		return nil, fmt.Errorf("%w: GetByNumber - scan bin: %v", ErrScanRow, err)
	}

	return b, nil
}

// UpdateStatus безусловно перезаписывает статус бина.
// Таблица переходов здесь не проверяется - легальность перехода
// контролирует слой бронирований.
func (r *Repository) UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bins").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"bin_number": binNumber}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBinNotFound
	}

	return nil
}

// List получает список бинов с фильтрацией по статусу, размеру и
// регистронезависимым подстрочным поиском по номеру бина и локации
func (r *Repository) List(ctx context.Context, filter domain.BinFilter) ([]*domain.Bin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(binColumns...).
		From("bins").
		OrderBy("bin_number ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Size != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"size": *filter.Size})
	}
	if filter.Text != nil && *filter.Text != "" {
		pattern := "%" + *filter.Text + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"bin_number": pattern},
			squirrel.ILike{"location": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBins(rows)
}

// CountByStatus возвращает количество бинов в разрезе статусов
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BinStatus]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bins").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BinStatus]int)
	for rows.Next() {
		var status domain.BinStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBin(row rowScanner) (*domain.Bin, error) {
	var b domain.Bin
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.BinNumber,
		&b.Size,
		&b.Status,
		&b.Condition,
		&b.Location,
		&b.LastService,
		&b.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBins сканирует результаты запроса в слайс бинов
func (r *Repository) scanBins(rows *sql.Rows) ([]*domain.Bin, error) {
	bins := make([]*domain.Bin, 0)

	for rows.Next() {
		b, err := r.scanBin(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBins - scan row: %v", ErrScanRow, err)
		}
		bins = append(bins, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBins - rows error: %v", ErrScanRow, err)
	}

	return bins, nil
}
