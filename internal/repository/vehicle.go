package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VehicleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVehicleRepo(db *dbpg.DB) *VehicleRepository {
	return &VehicleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, name, brand, inventory, price_per_day, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Brand, v.Inventory, v.PricePerDay, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}

	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT id, name, brand, inventory, price_per_day, created_at, updated_at
			  FROM vehicles
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	var v domain.Vehicle
	if err = row.Scan(
		&v.ID, &v.Name, &v.Brand, &v.Inventory,
		&v.PricePerDay, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("scan vehicle: %w", err)
	}

	return &v, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT id, name, brand, inventory, price_per_day, created_at, updated_at
			  FROM vehicles
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err = rows.Scan(
			&v.ID, &v.Name, &v.Brand, &v.Inventory,
			&v.PricePerDay, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
