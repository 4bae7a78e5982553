package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

var _ repository.RefuelingRepository = (*RefuelingRepo)(nil)

// RefuelingRepo implementación de RefuelingRepository sobre PostgreSQL (usable con pool o tx).
type RefuelingRepo struct {
	q Querier
}

// NewRefuelingRepository construye el adaptador de abastecimientos. Pasar pool o tx (Querier).
func NewRefuelingRepository(q Querier) *RefuelingRepo {
	return &RefuelingRepo{q: q}
}

const refuelingColumns = `id, date, liters, price_per_liter, total_cost, vehicle_km, vehicle_id, employee_id, created_at, updated_at`

// Create persiste un abastecimiento con el costo total ya calculado.
func (r *RefuelingRepo) Create(f *entity.Refueling) error {
	query := `
		INSERT INTO refuelings (` + refuelingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Date, f.Liters, f.PricePerLiter, f.TotalCost,
		f.VehicleKM, f.VehicleID, f.EmployeeID, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refueling: %w", err)
	}
	return nil
}

// GetByID obtiene un abastecimiento por ID.
func (r *RefuelingRepo) GetByID(id string) (*entity.Refueling, error) {
	query := `SELECT ` + refuelingColumns + ` FROM refuelings WHERE id = $1`
	var f entity.Refueling
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Date, &f.Liters, &f.PricePerLiter, &f.TotalCost,
		&f.VehicleKM, &f.VehicleID, &f.EmployeeID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refueling: %w", err)
	}
	return &f, nil
}

// List lista abastecimientos con rótulos de vehículo y funcionario,
// por fecha descendente. vehicleID vacío = toda la flota.
func (r *RefuelingRepo) List(vehicleID string) ([]repository.RefuelingRow, error) {
	query := `
		SELECT r.id, r.date, r.liters, r.price_per_liter, r.total_cost, r.vehicle_km,
			r.vehicle_id, r.employee_id, r.created_at, r.updated_at,
			v.plate, v.model, e.name
		FROM refuelings r
		JOIN vehicles v ON v.id = r.vehicle_id
		JOIN employees e ON e.id = r.employee_id`
	args := []any{}
	if vehicleID != "" {
		query += ` WHERE r.vehicle_id = $1`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY r.date DESC, r.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list refuelings: %w", err)
	}
	defer rows.Close()
	var list []repository.RefuelingRow
	for rows.Next() {
		var row repository.RefuelingRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.Liters, &row.PricePerLiter, &row.TotalCost, &row.VehicleKM,
			&row.VehicleID, &row.EmployeeID, &row.CreatedAt, &row.UpdatedAt,
			&row.VehiclePlate, &row.VehicleModel, &row.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("scan refueling: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update actualiza un abastecimiento existente.
func (r *RefuelingRepo) Update(f *entity.Refueling) error {
	query := `
		UPDATE refuelings SET date = $2, liters = $3, price_per_liter = $4, total_cost = $5,
			vehicle_km = $6, vehicle_id = $7, employee_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Date, f.Liters, f.PricePerLiter, f.TotalCost,
		f.VehicleKM, f.VehicleID, f.EmployeeID, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update refueling: %w", err)
	}
	return nil
}

// Delete elimina un abastecimiento por ID.
func (r *RefuelingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM refuelings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete refueling: %w", err)
	}
	return nil
}
