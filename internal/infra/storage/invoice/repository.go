package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/pkg/dbmetrics"
	"github.com/vkrnv/SBR-OperationsService/pkg/psqlbuilder"
)

var invoiceColumns = []string{
	"id",
	"invoice_number",
	"customer_name",
	"issue_date",
	"due_date",
	"amount",
	"status",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со счетами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый счет.
// Уникальность invoice_number намеренно не контролируется: номер выводится
// из номера бронирования и служит для визуальной трассировки, не как ключ.
func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("invoices").
		Columns(
			"invoice_number",
			"customer_name",
			"issue_date",
			"due_date",
			"amount",
			"status",
			"description",
		).
		Values(
			inv.InvoiceNumber,
			inv.CustomerName,
			inv.IssueDate,
			inv.DueDate,
			inv.Amount,
			inv.Status,
			inv.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return inv, nil
}

// GetByID получает счет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	inv, err := r.scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan invoice: %v", ErrScanRow, err)
	}

	return inv, nil
}

// UpdateStatus безусловно перезаписывает статус счета
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("invoices").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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
		return ErrInvoiceNotFound
	}

	return nil
}

// List получает счета, опционально фильтруя подстрочным поиском
// по клиенту и номеру счета
func (r *Repository) List(ctx context.Context, text *string) ([]*domain.Invoice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(invoiceColumns...).
		From("invoices").
		OrderBy("issue_date DESC, id DESC")

	if text != nil && *text != "" {
		pattern := "%" + *text + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"customer_name": pattern},
			squirrel.ILike{"invoice_number": pattern},
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

	return r.scanInvoices(rows)
}

// SumAmounts возвращает сумму всех счетов (totalRevenue на дашборде)
func (r *Repository) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("invoices").
		ToSql()

	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumAmounts - build select query: %v", ErrBuildQuery, err)
	}

	var total decimal.Decimal
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumAmounts - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// CountPending возвращает количество счетов в статусах draft и sent
func (r *Repository) CountPending(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pendingStatuses := make([]string, len(domain.PendingInvoiceStatuses))
	for i, s := range domain.PendingInvoiceStatuses {
		pendingStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("invoices").
		Where(squirrel.Eq{"status": pendingStatuses}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountPending - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountPending - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.CustomerName,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Amount,
		&inv.Status,
		&inv.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return &inv, nil
}

// scanInvoices сканирует результаты запроса в слайс счетов
func (r *Repository) scanInvoices(rows *sql.Rows) ([]*domain.Invoice, error) {
	invoices := make([]*domain.Invoice, 0)

	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanInvoices - scan row: %v", ErrScanRow, err)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanInvoices - rows error: %v", ErrScanRow, err)
	}

	return invoices, nil
}
