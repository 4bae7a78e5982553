package dto

import "github.com/shopspring/decimal"

// KpisDTO respuesta de GET /api/dashboard/kpis.
// Los montos van pre-formateados con dos decimales ("0.00") porque las
// tarjetas del dashboard los muestran tal cual; el resto de endpoints
// del dashboard entrega decimales sin formatear.
type KpisDTO struct {
	TotalVehicles     int    `json:"totalVehicles"`
	TotalEmployees    int    `json:"totalEmployees"`
	TotalMonthCost    string `json:"totalMonthCost"`
	TotalMonthRevenue string `json:"totalMonthRevenue"`
}

// CostEvolutionDTO serie mensual de costos y de ingresos de los últimos
// seis meses (posición i = mes más antiguo primero).
type CostEvolutionDTO struct {
	Labels      []string          `json:"labels"` // MM/yyyy
	CostData    []decimal.Decimal `json:"costData"`
	RevenueData []decimal.Decimal `json:"revenueData"`
}

// RevenueVsExpensesDTO serie mensual ingresos vs despesas.
type RevenueVsExpensesDTO struct {
	Labels      []string          `json:"labels"`
	RevenueData []decimal.Decimal `json:"revenueData"`
	ExpenseData []decimal.Decimal `json:"expenseData"`
}

// SpendingByCategoryDTO gráfico de torta con las tres categorías de
// gasto del período: combustible, mantenimiento y gastos generales.
type SpendingByCategoryDTO struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// CostsPerVehicleDTO barras apiladas por vehículo activo.
type CostsPerVehicleDTO struct {
	Labels          []string          `json:"labels"` // placas
	RefuelingData   []decimal.Decimal `json:"refuelingData"`
	MaintenanceData []decimal.Decimal `json:"maintenanceData"`
}

// TopVehiclesDTO top 5 de vehículos por costo total del período.
type TopVehiclesDTO struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}
