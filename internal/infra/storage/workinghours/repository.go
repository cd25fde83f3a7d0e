package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var entryColumns = []string{
	"id",
	"staff_id",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий недельных шаблонов рабочих часов
type Repository struct {
	db           dbmetrics.DBExecutor
	queryTimeout time.Duration
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor, queryTimeout time.Duration) *Repository {
	return &Repository{db: db, queryTimeout: queryTimeout}
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// Create создает окно рабочих часов
func (r *Repository) Create(ctx context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"staff_id",
			"day_of_week",
			"start_time",
			"end_time",
		).
		Values(
			entry.StaffID,
			entry.DayOfWeek,
			entry.StartTime,
			entry.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, mapError(err, "Create - execute insert")
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// GetByID получает окно по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WorkingHoursEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("working_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entry domain.WorkingHoursEntry
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.StaffID,
		&entry.DayOfWeek,
		&entry.StartTime,
		&entry.EndTime,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, mapError(err, "GetByID - scan entry")
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}

// GetByStaffID возвращает полный недельный шаблон сотрудника,
// отсортированный по дню недели и времени начала
func (r *Repository) GetByStaffID(ctx context.Context, staffID int64) ([]*domain.WorkingHoursEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - build select query: %v", ErrBuildQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "GetByStaffID - execute query")
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetByStaffAndDay возвращает окна сотрудника на день недели,
// отсортированные по времени начала
func (r *Repository) GetByStaffAndDay(ctx context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDay - build select query: %v", ErrBuildQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "GetByStaffAndDay - execute query")
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// Delete удаляет окно рабочих часов
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "Delete - execute delete")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// scanEntries сканирует результаты запроса в слайс окон
func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.WorkingHoursEntry, error) {
	entries := make([]*domain.WorkingHoursEntry, 0)

	for rows.Next() {
		var entry domain.WorkingHoursEntry
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.StaffID,
			&entry.DayOfWeek,
			&entry.StartTime,
			&entry.EndTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entry.UpdatedAt = updatedAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// Код ошибки PostgreSQL при нарушении exclusion constraint
const pqExclusionViolation = "23P01"

// mapError классифицирует ошибки БД:
// - таймаут или обрыв соединения -> ErrStoreUnavailable (можно повторить)
// - exclusion violation -> ErrOverlap (конкурирующая вставка пересекающегося окна)
// - остальное -> ErrExecQuery
func mapError(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqExclusionViolation {
		return fmt.Errorf("%w: %s: %v", ErrOverlap, op, err)
	}

	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
