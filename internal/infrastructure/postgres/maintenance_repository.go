package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación de MaintenanceRepository sobre PostgreSQL (usable con pool o tx).
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador de mantenimientos. Pasar pool o tx (Querier).
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

const maintenanceColumns = `id, date, description, cost, vehicle_id, created_at, updated_at`

// Create persiste un mantenimiento nuevo.
func (r *MaintenanceRepo) Create(m *entity.Maintenance) error {
	query := `
		INSERT INTO maintenances (` + maintenanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, m.Description, m.Cost, m.VehicleID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

// GetByID obtiene un mantenimiento por ID.
func (r *MaintenanceRepo) GetByID(id string) (*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE id = $1`
	var m entity.Maintenance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Date, &m.Description, &m.Cost, &m.VehicleID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return &m, nil
}

// List lista mantenimientos con rótulos del vehículo, por fecha
// descendente. vehicleID vacío = toda la flota.
func (r *MaintenanceRepo) List(vehicleID string) ([]repository.MaintenanceRow, error) {
	query := `
		SELECT m.id, m.date, m.description, m.cost, m.vehicle_id, m.created_at, m.updated_at,
			v.plate, v.model
		FROM maintenances m
		JOIN vehicles v ON v.id = m.vehicle_id`
	args := []any{}
	if vehicleID != "" {
		query += ` WHERE m.vehicle_id = $1`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY m.date DESC, m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenances: %w", err)
	}
	defer rows.Close()
	var list []repository.MaintenanceRow
	for rows.Next() {
		var row repository.MaintenanceRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.Description, &row.Cost, &row.VehicleID,
			&row.CreatedAt, &row.UpdatedAt, &row.VehiclePlate, &row.VehicleModel,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update actualiza un mantenimiento existente.
func (r *MaintenanceRepo) Update(m *entity.Maintenance) error {
	query := `
		UPDATE maintenances SET date = $2, description = $3, cost = $4, vehicle_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, m.Description, m.Cost, m.VehicleID, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	return nil
}

// Delete elimina un mantenimiento por ID.
func (r *MaintenanceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance: %w", err)
	}
	return nil
}
