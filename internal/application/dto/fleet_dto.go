package dto

import "github.com/shopspring/decimal"

// ── Vehículos ─────────────────────────────────────────────────────────

// VehicleRequest alta/edición de vehículo.
type VehicleRequest struct {
	Plate        string          `json:"plate"`
	Model        string          `json:"model"`
	Manufacturer string          `json:"manufacturer"`
	Year         int             `json:"year"`
	InitialKM    decimal.Decimal `json:"initial_km"`
	Renavam      string          `json:"renavam"`
	Status       string          `json:"status"`
}

// VehicleResponse vehículo en respuestas.
type VehicleResponse struct {
	ID           string          `json:"id"`
	Plate        string          `json:"plate"`
	Model        string          `json:"model"`
	Manufacturer string          `json:"manufacturer,omitempty"`
	Year         int             `json:"year"`
	InitialKM    decimal.Decimal `json:"initial_km"`
	Renavam      string          `json:"renavam,omitempty"`
	Status       string          `json:"status"`
}

// ── Funcionarios ──────────────────────────────────────────────────────

// EmployeeRequest alta/edición de funcionario.
type EmployeeRequest struct {
	Name   string           `json:"name"`
	Role   string           `json:"role"`
	Salary *decimal.Decimal `json:"salary"`
	Status string           `json:"status"`
}

// EmployeeResponse funcionario en respuestas.
type EmployeeResponse struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Role   string           `json:"role"`
	Salary *decimal.Decimal `json:"salary,omitempty"`
	Status string           `json:"status"`
}

// ── Abastecimientos ───────────────────────────────────────────────────

// RefuelingRequest registro de abastecimiento. TotalCost se calcula en
// el servidor (liters × price_per_liter) y se persiste.
type RefuelingRequest struct {
	Date          string          `json:"date"`
	Liters        decimal.Decimal `json:"liters"`
	PricePerLiter decimal.Decimal `json:"price_per_liter"`
	VehicleKM     decimal.Decimal `json:"vehicle_km"`
	VehicleID     string          `json:"vehicle_id"`
	EmployeeID    string          `json:"employee_id"`
}

// RefuelingResponse abastecimiento con rótulos.
type RefuelingResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Liters        decimal.Decimal `json:"liters"`
	PricePerLiter decimal.Decimal `json:"price_per_liter"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	VehicleKM     decimal.Decimal `json:"vehicle_km"`
	VehicleID     string          `json:"vehicle_id"`
	VehiclePlate  string          `json:"vehicle_plate,omitempty"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
}

// ── Mantenimientos ────────────────────────────────────────────────────

// MaintenanceRequest registro de mantenimiento.
type MaintenanceRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	VehicleID   string          `json:"vehicle_id"`
}

// MaintenanceResponse mantenimiento con rótulos.
type MaintenanceResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Cost         decimal.Decimal `json:"cost"`
	VehicleID    string          `json:"vehicle_id"`
	VehiclePlate string          `json:"vehicle_plate,omitempty"`
}

// ── Gastos generales ──────────────────────────────────────────────────

// GeneralExpenseRequest registro de gasto general.
type GeneralExpenseRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// GeneralExpenseResponse gasto general en respuestas.
type GeneralExpenseResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// ── Ingresos ──────────────────────────────────────────────────────────

// RevenueRequest registro de ingreso. Vehículo y funcionario opcionales.
type RevenueRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	VehicleID   *string         `json:"vehicle_id"`
	EmployeeID  *string         `json:"employee_id"`
}

// RevenueResponse ingreso con rótulos opcionales.
type RevenueResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	VehicleID    *string         `json:"vehicle_id,omitempty"`
	VehiclePlate string          `json:"vehicle_plate,omitempty"`
	EmployeeID   *string         `json:"employee_id,omitempty"`
	EmployeeName string          `json:"employee_name,omitempty"`
}

// ── Salarios ──────────────────────────────────────────────────────────

// EmployeeSalaryRequest registro (o corrección) del salario de un
// período. Periodo en formato YYYY-MM.
type EmployeeSalaryRequest struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

// EmployeeSalaryResponse salario mensual en respuestas.
type EmployeeSalaryResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
}
