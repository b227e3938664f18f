package capster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapsterBooking/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var capsterColumns = []string{
	"id",
	"username",
	"specialty",
	"description",
	"phone",
	"email",
	"address",
	"avatar",
	"rating",
	"album",
	"schedule",
	"created_at",
	"updated_at",
	"deleted_at",
}

// Repository репозиторий капстеров
// Удаленные капстеры (deleted_at IS NOT NULL) не видны ни одному методу чтения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория капстеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает капстера
func (r *Repository) Create(ctx context.Context, capster *domain.Capster) (*domain.Capster, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule, err := encodeSchedule(capster.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("capsters").
		Columns(
			"username",
			"specialty",
			"description",
			"phone",
			"email",
			"address",
			"avatar",
			"rating",
			"album",
			"schedule",
		).
		Values(
			capster.Username,
			capster.Specialty,
			capster.Description,
			capster.Phone,
			capster.Email,
			capster.Address,
			capster.Avatar,
			capster.Rating,
			pq.Array(capster.Album),
			schedule,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&capster.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrCapsterAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	capster.CreatedAt = createdAt.Time
	capster.UpdatedAt = updatedAt.Time

	return capster, nil
}

// GetByID получает капстера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Capster, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(capsterColumns...).
		From("capsters").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	capster, err := scanCapster(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCapsterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan capster: %v", ErrScanRow, err)
	}

	return capster, nil
}

// List получает страницу капстеров по фильтру и общее количество подходящих записей
// Сортировка - сначала новые
func (r *Repository) List(ctx context.Context, filter domain.CapstersFilter) ([]*domain.Capster, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := filterConditions(filter)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("capsters").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - count: %v", ErrExecQuery, err)
	}

	selectBuilder := psqlbuilder.Select(capsterColumns...).
		From("capsters").
		Where(where).
		OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset()))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	capsters := make([]*domain.Capster, 0)
	for rows.Next() {
		capster, err := scanCapster(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		capsters = append(capsters, capster)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return capsters, total, nil
}

// CountActive возвращает количество неудаленных капстеров
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("capsters").
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build count query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - count: %v", ErrExecQuery, err)
	}

	return count, nil
}

// ExistsByIdentity проверяет, занят ли username, email или телефон другим капстером
// excludeID позволяет не учитывать самого капстера при обновлении
func (r *Repository) ExistsByIdentity(ctx context.Context, username, email, phone string, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	identity := squirrel.Or{}
	if username != "" {
		identity = append(identity, squirrel.Eq{"username": username})
	}
	if email != "" {
		identity = append(identity, squirrel.Eq{"email": email})
	}
	if phone != "" {
		identity = append(identity, squirrel.Eq{"phone": phone})
	}
	if len(identity) == 0 {
		return false, nil
	}

	selectBuilder := psqlbuilder.Select("1").
		From("capsters").
		Where(squirrel.Eq{"deleted_at": nil}).
		Where(identity).
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByIdentity - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByIdentity - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update сохраняет изменяемые поля капстера
func (r *Repository) Update(ctx context.Context, capster *domain.Capster) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule, err := encodeSchedule(capster.Schedule)
	if err != nil {
		return fmt.Errorf("%w: Update - encode schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("capsters").
		Set("username", capster.Username).
		Set("specialty", capster.Specialty).
		Set("description", capster.Description).
		Set("phone", capster.Phone).
		Set("email", capster.Email).
		Set("address", capster.Address).
		Set("avatar", capster.Avatar).
		Set("rating", capster.Rating).
		Set("album", pq.Array(capster.Album)).
		Set("schedule", schedule).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": capster.ID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// SoftDelete помечает капстера удаленным
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("capsters").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SoftDelete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrCapsterAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrCapsterNotFound
	}

	return nil
}

// filterConditions строит условия поиска: подстрока без учета регистра по каждому заданному полю
func filterConditions(filter domain.CapstersFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"deleted_at": nil}}

	if filter.Username != nil && *filter.Username != "" {
		where = append(where, squirrel.ILike{"username": likePattern(*filter.Username)})
	}
	if filter.Specialty != nil && *filter.Specialty != "" {
		where = append(where, squirrel.ILike{"specialty": likePattern(*filter.Specialty)})
	}
	if filter.Email != nil && *filter.Email != "" {
		where = append(where, squirrel.ILike{"email": likePattern(*filter.Email)})
	}
	if filter.Phone != nil && *filter.Phone != "" {
		where = append(where, squirrel.ILike{"phone": likePattern(*filter.Phone)})
	}
	if filter.Address != nil && *filter.Address != "" {
		where = append(where, squirrel.ILike{"address": likePattern(*filter.Address)})
	}
	if filter.Rating != nil {
		where = append(where, squirrel.Eq{"rating": *filter.Rating})
	}

	return where
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCapster(row rowScanner) (*domain.Capster, error) {
	var capster domain.Capster
	var createdAt, updatedAt sql.NullTime
	var deletedAt sql.NullTime
	var album []string
	var schedule []byte

	err := row.Scan(
		&capster.ID,
		&capster.Username,
		&capster.Specialty,
		&capster.Description,
		&capster.Phone,
		&capster.Email,
		&capster.Address,
		&capster.Avatar,
		&capster.Rating,
		pq.Array(&album),
		&schedule,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	capster.Schedule, err = decodeSchedule(schedule)
	if err != nil {
		return nil, err
	}

	capster.Album = album
	capster.CreatedAt = createdAt.Time
	capster.UpdatedAt = updatedAt.Time
	if deletedAt.Valid {
		capster.DeletedAt = &deletedAt.Time
	}

	return &capster, nil
}

func likePattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
