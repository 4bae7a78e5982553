package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

var _ repository.GeneralExpenseRepository = (*GeneralExpenseRepo)(nil)

// GeneralExpenseRepo implementación de GeneralExpenseRepository sobre PostgreSQL (usable con pool o tx).
type GeneralExpenseRepo struct {
	q Querier
}

// NewGeneralExpenseRepository construye el adaptador de gastos generales. Pasar pool o tx (Querier).
func NewGeneralExpenseRepository(q Querier) *GeneralExpenseRepo {
	return &GeneralExpenseRepo{q: q}
}

const generalExpenseColumns = `id, date, description, category, amount, created_at, updated_at`

// Create persiste un gasto general nuevo.
func (r *GeneralExpenseRepo) Create(g *entity.GeneralExpense) error {
	query := `
		INSERT INTO general_expenses (` + generalExpenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Date, g.Description, g.Category, g.Amount, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert general expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto general por ID.
func (r *GeneralExpenseRepo) GetByID(id string) (*entity.GeneralExpense, error) {
	query := `SELECT ` + generalExpenseColumns + ` FROM general_expenses WHERE id = $1`
	var g entity.GeneralExpense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Date, &g.Description, &g.Category, &g.Amount, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get general expense: %w", err)
	}
	return &g, nil
}

// List lista los gastos generales por fecha descendente.
func (r *GeneralExpenseRepo) List() ([]*entity.GeneralExpense, error) {
	query := `SELECT ` + generalExpenseColumns + ` FROM general_expenses ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list general expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.GeneralExpense
	for rows.Next() {
		var g entity.GeneralExpense
		if err := rows.Scan(&g.ID, &g.Date, &g.Description, &g.Category, &g.Amount, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan general expense: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza un gasto general existente.
func (r *GeneralExpenseRepo) Update(g *entity.GeneralExpense) error {
	query := `
		UPDATE general_expenses SET date = $2, description = $3, category = $4, amount = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Date, g.Description, g.Category, g.Amount, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update general expense: %w", err)
	}
	return nil
}

// Delete elimina un gasto general por ID.
func (r *GeneralExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM general_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete general expense: %w", err)
	}
	return nil
}
