package fleet

import (
	"time"

	"github.com/google/uuid"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// GeneralExpenseUseCase casos de uso CRUD para gastos generales.
type GeneralExpenseUseCase struct {
	repo repository.GeneralExpenseRepository
}

// NewGeneralExpenseUseCase construye el caso de uso.
func NewGeneralExpenseUseCase(repo repository.GeneralExpenseRepository) *GeneralExpenseUseCase {
	return &GeneralExpenseUseCase{repo: repo}
}

func validGeneralExpense(in dto.GeneralExpenseRequest) error {
	if !validDate(in.Date) || in.Description == "" {
		return domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra un gasto general.
func (uc *GeneralExpenseUseCase) Create(in dto.GeneralExpenseRequest) (*dto.GeneralExpenseResponse, error) {
	if err := validGeneralExpense(in); err != nil {
		return nil, err
	}
	now := time.Now()
	expense := &entity.GeneralExpense{
		ID:          uuid.New().String(),
		Date:        in.Date,
		Description: in.Description,
		Category:    in.Category,
		Amount:      in.Amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toGeneralExpenseResponse(expense), nil
}

// GetByID obtiene un gasto general por ID.
func (uc *GeneralExpenseUseCase) GetByID(id string) (*dto.GeneralExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toGeneralExpenseResponse(expense), nil
}

// List lista los gastos generales por fecha descendente.
func (uc *GeneralExpenseUseCase) List() ([]dto.GeneralExpenseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.GeneralExpenseResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGeneralExpenseResponse(g))
	}
	return items, nil
}

// Update actualiza un gasto general.
func (uc *GeneralExpenseUseCase) Update(id string, in dto.GeneralExpenseRequest) (*dto.GeneralExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if err := validGeneralExpense(in); err != nil {
		return nil, err
	}
	expense.Date = in.Date
	expense.Description = in.Description
	expense.Category = in.Category
	expense.Amount = in.Amount
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toGeneralExpenseResponse(expense), nil
}

// Delete elimina un gasto general por ID.
func (uc *GeneralExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toGeneralExpenseResponse(g *entity.GeneralExpense) *dto.GeneralExpenseResponse {
	if g == nil {
		return nil
	}
	return &dto.GeneralExpenseResponse{
		ID:          g.ID,
		Date:        g.Date,
		Description: g.Description,
		Category:    g.Category,
		Amount:      g.Amount,
	}
}
