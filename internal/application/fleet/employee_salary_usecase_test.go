package fleet_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/application/fleet"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memSalaryRepo replica la semántica del upsert por (employee_id, period).
type memSalaryRepo struct {
	byKey map[string]*entity.EmployeeSalary // employeeID + "|" + period
}

func newMemSalaryRepo() *memSalaryRepo {
	return &memSalaryRepo{byKey: map[string]*entity.EmployeeSalary{}}
}

func (m *memSalaryRepo) Upsert(s *entity.EmployeeSalary) error {
	key := s.EmployeeID + "|" + s.Period
	if existing, ok := m.byKey[key]; ok {
		existing.Amount = s.Amount
		existing.Notes = s.Notes
		s.ID = existing.ID
		return nil
	}
	cp := *s
	m.byKey[key] = &cp
	return nil
}

func (m *memSalaryRepo) ListByEmployee(employeeID string) ([]*entity.EmployeeSalary, error) {
	var out []*entity.EmployeeSalary
	for _, s := range m.byKey {
		if s.EmployeeID == employeeID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period > out[j].Period })
	return out, nil
}

func (m *memSalaryRepo) Delete(id string) error {
	for key, s := range m.byKey {
		if s.ID == id {
			delete(m.byKey, key)
		}
	}
	return nil
}

type memEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newMemEmployeeRepo(employees ...*entity.Employee) *memEmployeeRepo {
	m := &memEmployeeRepo{byID: map[string]*entity.Employee{}}
	for _, e := range employees {
		m.byID[e.ID] = e
	}
	return m
}

func (m *memEmployeeRepo) Create(e *entity.Employee) error { m.byID[e.ID] = e; return nil }
func (m *memEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	if e, ok := m.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}
func (m *memEmployeeRepo) List(string) ([]*entity.Employee, error) { return nil, nil }
func (m *memEmployeeRepo) Update(e *entity.Employee) error         { m.byID[e.ID] = e; return nil }
func (m *memEmployeeRepo) Delete(id string) error                  { delete(m.byID, id); return nil }

func salaryUseCase() *fleet.EmployeeSalaryUseCase {
	employees := newMemEmployeeRepo(&entity.Employee{
		ID:     "e1",
		Name:   "Carlos Silva",
		Status: entity.EmployeeStatusActive,
	})
	return fleet.NewEmployeeSalaryUseCase(newMemSalaryRepo(), employees)
}

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestSalaryRecord_AltaDeUnPeriodo(t *testing.T) {
	uc := salaryUseCase()

	out, err := uc.Record("e1", dto.EmployeeSalaryRequest{
		Period: "2026-01",
		Amount: decimal.NewFromInt(3500),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "2026-01", out.Period)
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(3500)))
}

// Repetir el período corrige el monto, no duplica la fila.
func TestSalaryRecord_MismoPeriodoCorrige(t *testing.T) {
	uc := salaryUseCase()

	_, err := uc.Record("e1", dto.EmployeeSalaryRequest{Period: "2026-01", Amount: decimal.NewFromInt(3500)})
	require.NoError(t, err)
	_, err = uc.Record("e1", dto.EmployeeSalaryRequest{Period: "2026-01", Amount: decimal.NewFromInt(3800)})
	require.NoError(t, err)

	list, err := uc.ListByEmployee("e1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Amount.Equal(decimal.NewFromInt(3800)))
}

func TestSalaryRecord_Validaciones(t *testing.T) {
	uc := salaryUseCase()

	// Período con formato de fecha completa en lugar de YYYY-MM
	_, err := uc.Record("e1", dto.EmployeeSalaryRequest{Period: "2026-01-15", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record("e1", dto.EmployeeSalaryRequest{Period: "2026-01", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalaryRecord_FuncionarioInexistente(t *testing.T) {
	uc := salaryUseCase()

	_, err := uc.Record("no-existe", dto.EmployeeSalaryRequest{
		Period: "2026-01",
		Amount: decimal.NewFromInt(3500),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByEmployee
// ──────────────────────────────────────────────────────────────────────────────

func TestSalaryList_PeriodosDescendentes(t *testing.T) {
	uc := salaryUseCase()

	for _, p := range []string{"2025-11", "2026-01", "2025-12"} {
		_, err := uc.Record("e1", dto.EmployeeSalaryRequest{Period: p, Amount: decimal.NewFromInt(3500)})
		require.NoError(t, err)
	}

	list, err := uc.ListByEmployee("e1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-01", list[0].Period)
	assert.Equal(t, "2025-12", list[1].Period)
	assert.Equal(t, "2025-11", list[2].Period)
}

func TestSalaryList_FuncionarioInexistente(t *testing.T) {
	uc := salaryUseCase()

	_, err := uc.ListByEmployee("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
