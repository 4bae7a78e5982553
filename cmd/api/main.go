package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/scala-gestao/frota-api/internal/application/analytics"
	"github.com/scala-gestao/frota-api/internal/application/auth"
	"github.com/scala-gestao/frota-api/internal/application/fleet"
	"github.com/scala-gestao/frota-api/internal/application/report"
	infrapdf "github.com/scala-gestao/frota-api/internal/infrastructure/pdf"
	"github.com/scala-gestao/frota-api/internal/infrastructure/postgres"
	httpRouter "github.com/scala-gestao/frota-api/internal/interfaces/http"
	"github.com/scala-gestao/frota-api/pkg/config"
	"github.com/scala-gestao/frota-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	salaryRepo := postgres.NewEmployeeSalaryRepository(pool)
	refuelingRepo := postgres.NewRefuelingRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	expenseRepo := postgres.NewGeneralExpenseRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	vehicleUC := fleet.NewVehicleUseCase(vehicleRepo)
	employeeUC := fleet.NewEmployeeUseCase(employeeRepo)
	salaryUC := fleet.NewEmployeeSalaryUseCase(salaryRepo, employeeRepo)
	refuelingUC := fleet.NewRefuelingUseCase(refuelingRepo, vehicleRepo)
	maintenanceUC := fleet.NewMaintenanceUseCase(maintenanceRepo, vehicleRepo)
	expenseUC := fleet.NewGeneralExpenseUseCase(expenseRepo)
	revenueUC := fleet.NewRevenueUseCase(revenueRepo, vehicleRepo, employeeRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// Reporte analítico en PDF: wkhtmltopdf renderiza la plantilla HTML con gráficos
	renderer := infrapdf.NewWKHTMLRenderer(cfg.Company.LogoPath)
	reportUC := report.NewUseCase(analyticsRepo, vehicleRepo, employeeRepo, renderer, report.CompanyInfo{
		Name:        cfg.Company.Name,
		CNPJ:        cfg.Company.CNPJ,
		AddressLine: cfg.Company.AddressLine,
		CityLine:    cfg.Company.CityLine,
		Phone:       cfg.Company.Phone,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // el reporte PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frota API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		VehicleUC:   vehicleUC,
		EmployeeUC:  employeeUC,
		SalaryUC:    salaryUC,
		RefuelingUC: refuelingUC,
		MaintUC:     maintenanceUC,
		ExpenseUC:   expenseUC,
		RevenueUC:   revenueUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
