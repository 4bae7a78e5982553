package pdf

import (
	"encoding/json"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/application/report"
)

// reportView es el objeto ya formateado que consume la plantilla HTML.
// Todo valor numérico llega como texto pt-BR; la plantilla no formatea.
type reportView struct {
	CompanyName    string
	CompanyCNPJ    string
	CompanyAddress string
	CompanyCity    string
	CompanyPhone   string

	// Data URI del logo; vacío cuando no hay archivo y la portada cae
	// al nombre de la empresa como marca.
	LogoDataURI template.URL

	PeriodStart string // dd/MM/yyyy
	PeriodEnd   string
	GeneratedAt string

	TotalRevenue  string
	TotalExpenses string
	NetResult     string
	NetPositive   bool
	Margin        string

	FleetCostPerKM    string
	TotalTrips        string
	AvgRevenuePerTrip string

	RecordRevenues     string
	RecordRefuelings   string
	RecordMaintenances string
	RecordExpenses     string
	RecordVehicles     string
	RecordEmployees    string

	TopVehicleCost     string
	TopVehicleRevenue  string
	TopVehicleBalance  string
	TopEmployeeRevenue string
	TopExpenseCategory string

	// Series serializadas a JSON para los scripts de Chart.js.
	PieLabels    template.JS
	PieData      template.JS
	BarData      template.JS
	LineLabels   template.JS
	LineRevenue  template.JS
	LineExpenses template.JS

	Vehicles      []vehicleRowView
	Employees     []employeeRowView
	EmployeeDaily []employeeDailyView

	RankCost    []rankRowView
	RankRevenue []rankRowView
	RankBalance []rankRowView
	RankEconomy []rankRowView
	RankDrivers []rankRowView

	Revenues     []revenueRowView
	Refuelings   []refuelingRowView
	Maintenances []maintenanceRowView
	Expenses     []expenseRowView
}

type vehicleRowView struct {
	Plate, Model, KMDriven, Economy, TotalCost, TotalRevenue string
	Balance, CostPerKM, RevenuePerKM, MaintenanceCount       string
	BalancePositive                                          bool
}

type employeeRowView struct {
	Name, TotalRevenue, Trips, AvgPerTrip string
}

// employeeDailyView tabla de receitas diarias de un funcionario.
type employeeDailyView struct {
	Name string
	Rows []dailyRevenueRowView
}

type dailyRevenueRowView struct {
	Date, Amount string
}

type rankRowView struct {
	Position string
	Label    string
	Value    string
}

type revenueRowView struct {
	Date, Description, Vehicle, Employee, Amount string
}

type refuelingRowView struct {
	Date, Vehicle, Employee, Liters, PricePerLiter, Total, OdometerKM string
}

type maintenanceRowView struct {
	Date, Vehicle, Description, Cost string
}

type expenseRowView struct {
	Date, Description, Category, Amount string
}

// jsonSeries serializa una serie para inyectarla en el script del
// gráfico. El marshal de slices y strings planos no puede fallar.
func jsonSeries(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(b)
}

func floats(values []decimal.Decimal) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, v.InexactFloat64())
	}
	return out
}

// buildView aplana y formatea el reporte ensamblado para la plantilla.
func buildView(data *report.Data, logoURI string) *reportView {
	view := &reportView{
		LogoDataURI:    template.URL(logoURI),
		CompanyName:    data.Company.Name,
		CompanyCNPJ:    data.Company.CNPJ,
		CompanyAddress: data.Company.AddressLine,
		CompanyCity:    data.Company.CityLine,
		CompanyPhone:   data.Company.Phone,

		PeriodStart: period.DisplayDate(data.Period.Start),
		PeriodEnd:   period.DisplayDate(data.Period.End),
		GeneratedAt: data.GeneratedAt.Format("02/01/2006 15:04"),

		TotalRevenue:  formatMoney(data.FinancialSummary.TotalRevenue),
		TotalExpenses: formatMoney(data.FinancialSummary.TotalExpenses),
		NetResult:     formatMoney(data.FinancialSummary.NetResult),
		NetPositive:   !data.FinancialSummary.NetResult.IsNegative(),
		Margin:        formatPercent(data.FinancialSummary.Margin),

		FleetCostPerKM:    formatMoney(data.KPIs.FleetAvgCostPerKM),
		TotalTrips:        formatInt(data.KPIs.TotalTrips),
		AvgRevenuePerTrip: formatMoney(data.KPIs.AvgRevenuePerTrip),

		RecordRevenues:     formatInt(data.Records.Revenues),
		RecordRefuelings:   formatInt(data.Records.Refuelings),
		RecordMaintenances: formatInt(data.Records.Maintenances),
		RecordExpenses:     formatInt(data.Records.GeneralExpenses),
		RecordVehicles:     formatInt(data.Records.Vehicles),
		RecordEmployees:    formatInt(data.Records.Employees),

		TopExpenseCategory: data.Insights.TopExpenseCategory.Label + " (" + formatMoney(data.Insights.TopExpenseCategory.Value) + ")",
	}

	view.TopVehicleCost = "-"
	if v := data.Insights.TopVehicleCost; v != nil {
		view.TopVehicleCost = v.Plate + " (" + formatMoney(v.TotalCost) + ")"
	}
	view.TopVehicleRevenue = "-"
	if v := data.Insights.TopVehicleRevenue; v != nil {
		view.TopVehicleRevenue = v.Plate + " (" + formatMoney(v.TotalRevenue) + ")"
	}
	view.TopVehicleBalance = "-"
	if v := data.Insights.TopVehicleBalance; v != nil {
		view.TopVehicleBalance = v.Plate + " (" + formatMoney(v.Balance) + ")"
	}
	view.TopEmployeeRevenue = "-"
	if e := data.Insights.TopEmployeeRevenue; e != nil {
		view.TopEmployeeRevenue = e.Name + " (" + formatMoney(e.TotalRevenue) + ")"
	}

	view.PieLabels = jsonSeries([]string{"Combustível", "Manutenção", "Despesas Gerais"})
	view.PieData = jsonSeries(floats(data.Charts.Pie[:]))
	view.BarData = jsonSeries(floats(data.Charts.Bar[:]))

	lineLabels := make([]string, 0, len(data.Charts.Line))
	lineRevenue := make([]float64, 0, len(data.Charts.Line))
	lineExpenses := make([]float64, 0, len(data.Charts.Line))
	for _, e := range data.Charts.Line {
		lineLabels = append(lineLabels, period.DisplayDate(e.Date))
		lineRevenue = append(lineRevenue, e.Revenue.InexactFloat64())
		lineExpenses = append(lineExpenses, e.Expenses.InexactFloat64())
	}
	view.LineLabels = jsonSeries(lineLabels)
	view.LineRevenue = jsonSeries(lineRevenue)
	view.LineExpenses = jsonSeries(lineExpenses)

	for _, v := range data.VehicleAnalysis {
		view.Vehicles = append(view.Vehicles, vehicleRowView{
			Plate:            v.Plate,
			Model:            orDash(v.Model),
			KMDriven:         formatKM(v.KMDriven),
			Economy:          formatEconomy(v.AvgKMPerLiter),
			TotalCost:        formatMoney(v.TotalCost),
			TotalRevenue:     formatMoney(v.TotalRevenue),
			Balance:          formatMoney(v.Balance),
			CostPerKM:        formatMoney(v.CostPerKM),
			RevenuePerKM:     formatMoney(v.RevenuePerKM),
			MaintenanceCount: formatInt(v.MaintenanceCount),
			BalancePositive:  !v.Balance.IsNegative(),
		})
	}
	for _, e := range data.EmployeeAnalysis {
		view.Employees = append(view.Employees, employeeRowView{
			Name:         e.Name,
			TotalRevenue: formatMoney(e.TotalRevenue),
			Trips:        formatInt(e.TripsCount),
			AvgPerTrip:   formatMoney(e.AvgRevenuePerTrip),
		})
		daily := employeeDailyView{Name: e.Name}
		for _, d := range e.DailyRevenues {
			daily.Rows = append(daily.Rows, dailyRevenueRowView{
				Date:   period.DisplayDate(d.Date),
				Amount: formatMoney(d.Amount),
			})
		}
		view.EmployeeDaily = append(view.EmployeeDaily, daily)
	}

	for i, v := range data.TopLists.VehiclesCost {
		view.RankCost = append(view.RankCost, rankRowView{formatInt(i + 1), v.Plate, formatMoney(v.TotalCost)})
	}
	for i, v := range data.TopLists.VehiclesRevenue {
		view.RankRevenue = append(view.RankRevenue, rankRowView{formatInt(i + 1), v.Plate, formatMoney(v.TotalRevenue)})
	}
	for i, v := range data.TopLists.VehiclesBalance {
		view.RankBalance = append(view.RankBalance, rankRowView{formatInt(i + 1), v.Plate, formatMoney(v.Balance)})
	}
	for i, v := range data.TopLists.VehiclesEconomy {
		view.RankEconomy = append(view.RankEconomy, rankRowView{formatInt(i + 1), v.Plate, formatEconomy(v.AvgKMPerLiter)})
	}
	for i, e := range data.TopLists.EmployeesRevenue {
		view.RankDrivers = append(view.RankDrivers, rankRowView{formatInt(i + 1), e.Name, formatMoney(e.TotalRevenue)})
	}

	for _, r := range data.Revenues {
		view.Revenues = append(view.Revenues, revenueRowView{
			Date:        period.DisplayDate(r.Date),
			Description: r.Description,
			Vehicle:     orDash(r.VehiclePlate),
			Employee:    orDash(r.EmployeeName),
			Amount:      formatMoney(r.Amount),
		})
	}
	for _, r := range data.Refuelings {
		view.Refuelings = append(view.Refuelings, refuelingRowView{
			Date:          period.DisplayDate(r.Date),
			Vehicle:       r.VehiclePlate,
			Employee:      r.EmployeeName,
			Liters:        formatLiters(r.Liters),
			PricePerLiter: formatMoney(r.PricePerLiter),
			Total:         formatMoney(r.TotalCost),
			OdometerKM:    formatKM(r.VehicleKM),
		})
	}
	for _, m := range data.Maintenances {
		view.Maintenances = append(view.Maintenances, maintenanceRowView{
			Date:        period.DisplayDate(m.Date),
			Vehicle:     m.VehiclePlate,
			Description: m.Description,
			Cost:        formatMoney(m.Cost),
		})
	}
	for _, g := range data.GeneralExpenses {
		view.Expenses = append(view.Expenses, expenseRowView{
			Date:        period.DisplayDate(g.Date),
			Description: g.Description,
			Category:    orDash(g.Category),
			Amount:      formatMoney(g.Amount),
		})
	}

	return view
}
