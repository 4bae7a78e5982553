package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scala-gestao/frota-api/internal/application/analytics"
	"github.com/scala-gestao/frota-api/internal/application/auth"
	"github.com/scala-gestao/frota-api/internal/application/fleet"
	"github.com/scala-gestao/frota-api/internal/application/report"
	"github.com/scala-gestao/frota-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	VehicleUC   *fleet.VehicleUseCase
	EmployeeUC  *fleet.EmployeeUseCase
	SalaryUC    *fleet.EmployeeSalaryUseCase
	RefuelingUC *fleet.RefuelingUseCase
	MaintUC     *fleet.MaintenanceUseCase
	ExpenseUC   *fleet.GeneralExpenseUseCase
	RevenueUC   *fleet.RevenueUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.UseCase
	JWTSecret   string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Vehicles (protegido)
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Employees y salarios (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.SalaryUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/salaries", employeeHandler.RecordSalary)
	employees.Get("/:id/salaries", employeeHandler.ListSalaries)
	protected.Delete("/salaries/:salaryId", employeeHandler.DeleteSalary)

	// Refuelings (protegido)
	refuelings := protected.Group("/refuelings")
	refuelingHandler := NewRefuelingHandler(deps.RefuelingUC)
	refuelings.Post("/", refuelingHandler.Create)
	refuelings.Get("/", refuelingHandler.List)
	refuelings.Get("/:id", refuelingHandler.GetByID)
	refuelings.Put("/:id", refuelingHandler.Update)
	refuelings.Delete("/:id", refuelingHandler.Delete)

	// Maintenances (protegido)
	maintenances := protected.Group("/maintenances")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintUC)
	maintenances.Post("/", maintenanceHandler.Create)
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Get("/:id", maintenanceHandler.GetByID)
	maintenances.Put("/:id", maintenanceHandler.Update)
	maintenances.Delete("/:id", maintenanceHandler.Delete)

	// General expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewGeneralExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Revenues (protegido)
	revenues := protected.Group("/revenues")
	revenueHandler := NewRevenueHandler(deps.RevenueUC)
	revenues.Post("/", revenueHandler.Create)
	revenues.Get("/", revenueHandler.List)
	revenues.Get("/:id", revenueHandler.GetByID)
	revenues.Put("/:id", revenueHandler.Update)
	revenues.Delete("/:id", revenueHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Logger)
	dashboard.Get("/kpis", dashboardHandler.GetKpis)
	dashboard.Get("/cost-evolution", dashboardHandler.GetCostEvolution)
	dashboard.Get("/revenue-vs-expenses", dashboardHandler.GetRevenueVsExpenses)
	dashboard.Get("/spending-by-category", dashboardHandler.GetSpendingByCategory)
	dashboard.Get("/costs-per-vehicle", dashboardHandler.GetCostsPerVehicle)
	dashboard.Get("/top5-vehicles", dashboardHandler.GetTop5ExpensiveVehicles)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Logger)
	reports.Get("/full", reportHandler.GetFullReport)
}
