package fleet

import (
	"time"

	"github.com/google/uuid"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// EmployeeSalaryUseCase registra salarios mensuales por funcionario.
// Repetir el período corrige el monto en lugar de duplicar la fila.
type EmployeeSalaryUseCase struct {
	repo         repository.EmployeeSalaryRepository
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeSalaryUseCase construye el caso de uso.
func NewEmployeeSalaryUseCase(repo repository.EmployeeSalaryRepository, employeeRepo repository.EmployeeRepository) *EmployeeSalaryUseCase {
	return &EmployeeSalaryUseCase{repo: repo, employeeRepo: employeeRepo}
}

// Record inserta o corrige el salario de un funcionario en un período.
func (uc *EmployeeSalaryUseCase) Record(employeeID string, in dto.EmployeeSalaryRequest) (*dto.EmployeeSalaryResponse, error) {
	if !validPeriod(in.Period) || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	salary := &entity.EmployeeSalary{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Period:     in.Period,
		Amount:     in.Amount,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Upsert(salary); err != nil {
		return nil, err
	}
	return toEmployeeSalaryResponse(salary), nil
}

// ListByEmployee historial de salarios por período descendente.
func (uc *EmployeeSalaryUseCase) ListByEmployee(employeeID string) ([]dto.EmployeeSalaryResponse, error) {
	employee, err := uc.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeSalaryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toEmployeeSalaryResponse(s))
	}
	return items, nil
}

// Delete elimina un registro de salario por ID.
func (uc *EmployeeSalaryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmployeeSalaryResponse(s *entity.EmployeeSalary) *dto.EmployeeSalaryResponse {
	if s == nil {
		return nil
	}
	return &dto.EmployeeSalaryResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Period:     s.Period,
		Amount:     s.Amount,
		Notes:      s.Notes,
	}
}
