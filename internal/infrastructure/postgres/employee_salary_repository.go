package postgres

import (
	"context"
	"fmt"

	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

var _ repository.EmployeeSalaryRepository = (*EmployeeSalaryRepo)(nil)

// EmployeeSalaryRepo implementación de EmployeeSalaryRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeSalaryRepo struct {
	q Querier
}

// NewEmployeeSalaryRepository construye el adaptador de salarios. Pasar pool o tx (Querier).
func NewEmployeeSalaryRepository(q Querier) *EmployeeSalaryRepo {
	return &EmployeeSalaryRepo{q: q}
}

// Upsert inserta el salario del período o corrige monto y notas si ya
// existe fila para (employee_id, period).
func (r *EmployeeSalaryRepo) Upsert(s *entity.EmployeeSalary) error {
	query := `
		INSERT INTO employee_salaries (id, employee_id, period, amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, period)
		DO UPDATE SET amount = EXCLUDED.amount, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.EmployeeID, s.Period, s.Amount, s.Notes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert employee salary: %w", err)
	}
	return nil
}

// ListByEmployee historial de salarios por período descendente.
func (r *EmployeeSalaryRepo) ListByEmployee(employeeID string) ([]*entity.EmployeeSalary, error) {
	query := `
		SELECT id, employee_id, period, amount, notes, created_at, updated_at
		FROM employee_salaries WHERE employee_id = $1 ORDER BY period DESC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list employee salaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmployeeSalary
	for rows.Next() {
		var s entity.EmployeeSalary
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Period, &s.Amount, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee salary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un registro de salario por ID.
func (r *EmployeeSalaryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employee_salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee salary: %w", err)
	}
	return nil
}
