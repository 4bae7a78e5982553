package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// GeneralExpenseRepository acceso a persistencia de gastos generales.
type GeneralExpenseRepository interface {
	Create(g *entity.GeneralExpense) error
	GetByID(id string) (*entity.GeneralExpense, error)
	// List ordena por fecha descendente.
	List() ([]*entity.GeneralExpense, error)
	Update(g *entity.GeneralExpense) error
	Delete(id string) error
}
