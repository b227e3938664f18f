package booking

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
	"github.com/m04kA/SMC-CapsterBooking/pkg/txmanager"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"capster_id",
	"booking_date",
	"booking_hour",
	"service_id",
	"payment_id",
	"status",
	"rating",
	"image",
	"haircut_type",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create атомарно создает бронирование
// Уникальный частичный индекс по (capster_id, booking_date, booking_hour) для активных статусов
// не дает вставить второе активное бронирование в тот же слот: в этом случае
// INSERT ... ON CONFLICT DO NOTHING не вернет строку, и метод вернет ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"name",
			"email",
			"phone",
			"capster_id",
			"booking_date",
			"booking_hour",
			"service_id",
			"payment_id",
			"status",
			"rating",
			"image",
			"haircut_type",
		).
		Values(
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.CapsterID,
			booking.Date,
			booking.Hour,
			booking.ServiceID,
			booking.PaymentID,
			booking.Status,
			booking.Rating,
			booking.Image,
			booking.HaircutType,
		).
		Suffix("ON CONFLICT DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, wrapDBError(ErrExecQuery, "Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции обновления блокируем строку
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapDBError(ErrScanRow, "GetByID - scan booking", err)
	}

	return booking, nil
}

// List получает бронирования по фильтру
// Для выборки на конкретную дату сортирует по часу (ASC), иначе - сначала новые
// Внутри транзакции выборка на конкретную дату блокируется (FOR UPDATE) для usecase создания бронирования
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings"), filter, "")

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("booking_hour ASC", "id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "booking_hour DESC", "id DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(ErrExecQuery, "List - execute query", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(ErrScanRow, "List - rows error", err)
	}

	return bookings, nil
}

// GetBookedSlots возвращает занятые слоты капстера с указанными статусами
// Пустой statuses означает активные статусы
func (r *Repository) GetBookedSlots(ctx context.Context, capsterID int64, statuses []domain.BookingStatus) ([]domain.BookedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(statuses) == 0 {
		statuses = domain.ActiveStatuses
	}

	query, args, err := psqlbuilder.Select("booking_date", "booking_hour", "status").
		From("bookings").
		Where(squirrel.Eq{"capster_id": capsterID}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		OrderBy("booking_date ASC", "booking_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.BookedSlot, 0)
	for rows.Next() {
		var slot domain.BookedSlot
		if err := rows.Scan(&slot.Date, &slot.Hour, &slot.Status); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ListDetails получает бронирования вместе с именами капстера, способа оплаты и услуги
// Ссылки, которые не удалось разрешить, возвращаются как nil
// Порядок - сначала поздние даты, внутри даты по id. От него зависят нумерация строк отчета
// и порядок групп по способу оплаты и капстеру
func (r *Repository) ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(detailsSelect(), filter, "b.").OrderBy("b.booking_date DESC", "b.id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]domain.BookingDetails, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan row: %v", ErrScanRow, err)
		}
		details = append(details, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// GetDetailsByID получает бронирование с разрешенными ссылками
func (r *Repository) GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - scan row: %v", ErrScanRow, err)
	}

	return d, nil
}

// Update сохраняет все изменяемые поля бронирования
// Перенос в занятый слот возвращает ErrSlotNotAvailable
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("name", booking.Name).
		Set("email", booking.Email).
		Set("phone", booking.Phone).
		Set("capster_id", booking.CapsterID).
		Set("booking_date", booking.Date).
		Set("booking_hour", booking.Hour).
		Set("service_id", booking.ServiceID).
		Set("payment_id", booking.PaymentID).
		Set("status", booking.Status).
		Set("rating", booking.Rating).
		Set("image", booking.Image).
		Set("haircut_type", booking.HaircutType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// Delete удаляет бронирование (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrSlotNotAvailable
	}
	if err != nil {
		return wrapDBError(ErrExecQuery, op+" - execute", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func detailsSelect() squirrel.SelectBuilder {
	columns := make([]string, 0, len(bookingColumns)+4)
	for _, c := range bookingColumns {
		columns = append(columns, "b."+c)
	}
	columns = append(columns, "c.username", "p.name", "s.name", "s.price")

	return psqlbuilder.Select(columns...).
		From("bookings b").
		LeftJoin("capsters c ON c.id = b.capster_id").
		LeftJoin("payment_methods p ON p.id = b.payment_id").
		LeftJoin("services s ON s.id = b.service_id")
}

func applyFilter(sb squirrel.SelectBuilder, filter domain.BookingsFilter, prefix string) squirrel.SelectBuilder {
	if filter.CapsterID != nil {
		sb = sb.Where(squirrel.Eq{prefix + "capster_id": *filter.CapsterID})
	}
	if filter.Date != nil {
		sb = sb.Where(squirrel.Eq{prefix + "booking_date": domain.TruncateDay(*filter.Date)})
	}
	if filter.DateFrom != nil {
		sb = sb.Where(squirrel.GtOrEq{prefix + "booking_date": domain.TruncateDay(*filter.DateFrom)})
	}
	if filter.DateTo != nil {
		sb = sb.Where(squirrel.LtOrEq{prefix + "booking_date": domain.TruncateDay(*filter.DateTo)})
	}
	if filter.Hour != nil {
		sb = sb.Where(squirrel.Eq{prefix + "booking_hour": *filter.Hour})
	}
	if filter.Email != nil {
		sb = sb.Where(squirrel.Eq{"LOWER(" + prefix + "email)": *filter.Email})
	}
	if len(filter.Statuses) > 0 {
		sb = sb.Where(squirrel.Eq{prefix + "status": statusStrings(filter.Statuses)})
	}
	return sb
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.CapsterID,
		&booking.Date,
		&booking.Hour,
		&booking.ServiceID,
		&booking.PaymentID,
		&booking.Status,
		&booking.Rating,
		&booking.Image,
		&booking.HaircutType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanDetails(row rowScanner) (*domain.BookingDetails, error) {
	var d domain.BookingDetails
	var createdAt, updatedAt sql.NullTime
	var capsterName, paymentName, serviceName sql.NullString
	var servicePrice sql.NullInt64

	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Email,
		&d.Phone,
		&d.CapsterID,
		&d.Date,
		&d.Hour,
		&d.ServiceID,
		&d.PaymentID,
		&d.Status,
		&d.Rating,
		&d.Image,
		&d.HaircutType,
		&createdAt,
		&updatedAt,
		&capsterName,
		&paymentName,
		&serviceName,
		&servicePrice,
	)
	if err != nil {
		return nil, err
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time
	if capsterName.Valid {
		d.CapsterName = &capsterName.String
	}
	if paymentName.Valid {
		d.PaymentName = &paymentName.String
	}
	if serviceName.Valid {
		d.ServiceName = &serviceName.String
	}
	if servicePrice.Valid {
		d.ServicePrice = &servicePrice.Int64
	}

	return &d, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// wrapDBError оборачивает ошибку драйвера; конфликт сериализации помечается
// txmanager.ErrSerializationFailure, чтобы транзакция была повторена
func wrapDBError(sentinel error, op string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", txmanager.ErrSerializationFailure, op, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
