package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo implementación de RevenueRepository sobre PostgreSQL (usable con pool o tx).
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador de ingresos. Pasar pool o tx (Querier).
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

const revenueColumns = `id, date, description, amount, vehicle_id, employee_id, created_at, updated_at`

// Create persiste un ingreso nuevo. Los vínculos opcionales viajan
// como NULL cuando no vienen.
func (r *RevenueRepo) Create(rev *entity.Revenue) error {
	query := `
		INSERT INTO revenues (` + revenueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rev.ID, rev.Date, rev.Description, rev.Amount,
		rev.VehicleID, rev.EmployeeID, rev.CreatedAt, rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}

// GetByID obtiene un ingreso por ID.
func (r *RevenueRepo) GetByID(id string) (*entity.Revenue, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenues WHERE id = $1`
	var rev entity.Revenue
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rev.ID, &rev.Date, &rev.Description, &rev.Amount,
		&rev.VehicleID, &rev.EmployeeID, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get revenue: %w", err)
	}
	return &rev, nil
}

// List lista ingresos con rótulos opcionales resueltos por LEFT JOIN,
// por fecha descendente.
func (r *RevenueRepo) List() ([]repository.RevenueRow, error) {
	query := `
		SELECT rv.id, rv.date, rv.description, rv.amount, rv.vehicle_id, rv.employee_id,
			rv.created_at, rv.updated_at, COALESCE(v.plate, ''), COALESCE(e.name, '')
		FROM revenues rv
		LEFT JOIN vehicles v ON v.id = rv.vehicle_id
		LEFT JOIN employees e ON e.id = rv.employee_id
		ORDER BY rv.date DESC, rv.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	defer rows.Close()
	var list []repository.RevenueRow
	for rows.Next() {
		var row repository.RevenueRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.Description, &row.Amount, &row.VehicleID, &row.EmployeeID,
			&row.CreatedAt, &row.UpdatedAt, &row.VehiclePlate, &row.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update actualiza un ingreso existente.
func (r *RevenueRepo) Update(rev *entity.Revenue) error {
	query := `
		UPDATE revenues SET date = $2, description = $3, amount = $4, vehicle_id = $5, employee_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rev.ID, rev.Date, rev.Description, rev.Amount,
		rev.VehicleID, rev.EmployeeID, rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update revenue: %w", err)
	}
	return nil
}

// Delete elimina un ingreso por ID.
func (r *RevenueRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM revenues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete revenue: %w", err)
	}
	return nil
}
