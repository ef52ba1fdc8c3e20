package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ujen5173/Ridezio-sub000/internal/availability"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create is the commit point of a booking attempt. The availability re-check
// and the insert run in one transaction; the FOR UPDATE on the vehicle row
// linearizes concurrent attempts for the same vehicle, so the second request
// to arrive sees the first one's reservation in the overlap set. Requests for
// different vehicles never contend.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем транспорт на время проверки
	invQuery := `SELECT inventory FROM vehicles WHERE id = $1 FOR UPDATE`
	var inventory int
	if err = tx.QueryRowContext(ctx, invQuery, res.VehicleID).Scan(&inventory); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVehicleNotFound
		}
		return fmt.Errorf("get inventory: %w", err)
	}

	rng := res.Range()
	overlapQuery := `SELECT id, vehicle_id, user_id, quantity, start_date, end_date, status, total_price, created_at, updated_at
					 FROM reservations
					 WHERE vehicle_id = $1
					   AND status = ANY($2)
					   AND start_date <= $3
					   AND end_date >= $4`
	rows, err := tx.QueryContext(
		ctx, overlapQuery, res.VehicleID,
		pq.Array(domain.ActiveStatuses), rng.End, rng.Start,
	)
	if err != nil {
		return fmt.Errorf("list overlapping reservations: %w", err)
	}
	overlapping, err := scanReservations(rows)
	if err != nil {
		return err
	}

	free := availability.ForRange(inventory, overlapping, rng)
	if res.Quantity > free {
		return &domain.InsufficientAvailabilityError{Available: free}
	}

	// Создаем бронь
	insertQuery := `INSERT INTO reservations (id, vehicle_id, user_id, quantity, start_date, end_date, status, total_price, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		res.ID, res.VehicleID, res.UserID, res.Quantity,
		rng.Start, rng.End, res.Status, res.TotalPrice,
		res.CreatedAt, res.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, vehicle_id, user_id, quantity, start_date, end_date, status, total_price, created_at, updated_at
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// UpdateStatus atomically moves a reservation to the target status iff its
// current status is in from. rows=0 is disambiguated afterwards: missing row
// vs. wrong current status.
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context, id string,
	from []domain.ReservationStatus, to domain.ReservationStatus,
) error {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`
	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, to, pq.Array(from))
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: брони нет или статус уже другой
		var current string
		checkQuery := `SELECT status FROM reservations WHERE id = $1`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if scanErr != nil {
			return domain.ErrReservationNotFound
		}
		if scanErr = row.Scan(&current); scanErr != nil {
			return domain.ErrReservationNotFound
		}
		if len(from) == 1 && from[0] == domain.ReservationStatusPending {
			return domain.ErrReservationNotPending
		}
		return domain.ErrReservationNotActive
	}

	return nil
}

func (r *ReservationRepository) ListActiveByVehicle(ctx context.Context, vehicleID string) ([]*domain.Reservation, error) {
	query := `SELECT id, vehicle_id, user_id, quantity, start_date, end_date, status, total_price, created_at, updated_at
			  FROM reservations
			  WHERE vehicle_id = $1 AND status = ANY($2)
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, vehicleID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list reservations by vehicle: %w", err)
	}

	return scanReservations(rows)
}

func (r *ReservationRepository) ListActiveInRange(ctx context.Context, vehicleID string, rng domain.DateRange) ([]*domain.Reservation, error) {
	query := `SELECT id, vehicle_id, user_id, quantity, start_date, end_date, status, total_price, created_at, updated_at
			  FROM reservations
			  WHERE vehicle_id = $1
			    AND status = ANY($2)
			    AND start_date <= $3
			    AND end_date >= $4`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, vehicleID,
		pq.Array(domain.ActiveStatuses), rng.End, rng.Start,
	)
	if err != nil {
		return nil, fmt.Errorf("list reservations in range: %w", err)
	}

	return scanReservations(rows)
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT id, vehicle_id, user_id, quantity, start_date, end_date, status, total_price, created_at, updated_at
			  FROM reservations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}

	return scanReservations(rows)
}

func (r *ReservationRepository) CancelExpiredPending(ctx context.Context, ttl time.Duration) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND created_at + make_interval(secs => $3) < now()
			  RETURNING id, vehicle_id, user_id, quantity, start_date, end_date, status, total_price, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusPending, domain.ReservationStatusCancelled,
		ttl.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired pending: %w", err)
	}

	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var r domain.Reservation
	if err := scan(
		&r.ID, &r.VehicleID, &r.UserID, &r.Quantity,
		&r.StartDate, &r.EndDate, &r.Status, &r.TotalPrice,
		&r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}
