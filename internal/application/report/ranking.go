package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// rankingSize tamaño fijo de todos los rankings del reporte.
const rankingSize = 5

// TopN copia la lista, la ordena descendentemente por la métrica
// seleccionada y la trunca a n. El orden es estable: los empates
// conservan el orden de llegada.
func TopN[T any](items []T, n int, key func(T) decimal.Decimal) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]).GreaterThan(key(out[j]))
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Rankings las cinco listas top-5 del reporte.
type Rankings struct {
	VehiclesCost     []VehicleAnalysis
	VehiclesRevenue  []VehicleAnalysis
	VehiclesBalance  []VehicleAnalysis
	VehiclesEconomy  []VehicleAnalysis
	EmployeesRevenue []EmployeeAnalysis
}

// Rank arma los rankings a partir de los análisis. El ranking de
// economía descarta primero las economías en cero: un vehículo sin
// cifra válida de KM/L jamás puede salir como "más económico".
func Rank(vehicles []VehicleAnalysis, employees []EmployeeAnalysis) Rankings {
	withEconomy := make([]VehicleAnalysis, 0, len(vehicles))
	for _, v := range vehicles {
		if v.AvgKMPerLiter.IsPositive() {
			withEconomy = append(withEconomy, v)
		}
	}

	return Rankings{
		VehiclesCost: TopN(vehicles, rankingSize, func(v VehicleAnalysis) decimal.Decimal {
			return v.TotalCost
		}),
		VehiclesRevenue: TopN(vehicles, rankingSize, func(v VehicleAnalysis) decimal.Decimal {
			return v.TotalRevenue
		}),
		VehiclesBalance: TopN(vehicles, rankingSize, func(v VehicleAnalysis) decimal.Decimal {
			return v.Balance
		}),
		VehiclesEconomy: TopN(withEconomy, rankingSize, func(v VehicleAnalysis) decimal.Decimal {
			return v.AvgKMPerLiter
		}),
		EmployeesRevenue: TopN(employees, rankingSize, func(e EmployeeAnalysis) decimal.Decimal {
			return e.TotalRevenue
		}),
	}
}
