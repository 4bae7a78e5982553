package fleet

import (
	"time"

	"github.com/google/uuid"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para funcionarios.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func validEmployeeStatus(s string) bool {
	return s == entity.EmployeeStatusActive || s == entity.EmployeeStatusInactive
}

// Create registra un funcionario nuevo.
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.EmployeeStatusActive
	}
	if !validEmployeeStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary != nil && in.Salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Role:      in.Role,
		Salary:    in.Salary,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un funcionario por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// List lista funcionarios, opcionalmente filtrados por estado.
func (uc *EmployeeUseCase) List(status string) ([]dto.EmployeeResponse, error) {
	if status != "" && !validEmployeeStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Update actualiza un funcionario.
func (uc *EmployeeUseCase) Update(id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	if in.Name == "" || !validEmployeeStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary != nil && in.Salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	employee.Name = in.Name
	employee.Role = in.Role
	employee.Salary = in.Salary
	employee.Status = in.Status
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un funcionario por ID.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Role:   e.Role,
		Salary: e.Salary,
		Status: e.Status,
	}
}
