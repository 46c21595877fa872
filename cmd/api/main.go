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
	"github.com/vitta-app/vitta-api/internal/application/agenda"
	"github.com/vitta-app/vitta-api/internal/application/auth"
	"github.com/vitta-app/vitta-api/internal/application/guard"
	"github.com/vitta-app/vitta-api/internal/application/resolver"
	"github.com/vitta-app/vitta-api/internal/application/theme"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
	infrapdf "github.com/vitta-app/vitta-api/internal/infrastructure/pdf"
	"github.com/vitta-app/vitta-api/internal/infrastructure/postgres"
	httpRouter "github.com/vitta-app/vitta-api/internal/interfaces/http"
	"github.com/vitta-app/vitta-api/pkg/config"
	"github.com/vitta-app/vitta-api/pkg/logger"
	"github.com/vitta-app/vitta-api/pkg/ready"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	tenantRepo := postgres.NewTenantRepository(pool)
	ownerRepo := postgres.NewOwnerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	bookingTx := postgres.NewBookingTxRunner(pool)

	roleResolver := resolver.NewRoleResolver(ownerRepo, cfg.Cache.TTL, log)
	tenantResolver := resolver.NewTenantResolver(tenantRepo, cfg.Cache.TTL, log)
	themes := theme.NewResolver(cfg.Branding.Dir, log)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	routerReady := ready.New()
	guards := guard.NewChain(routerReady, roleResolver, tenantResolver, cfg.Guard, log)

	tenantUC := usecase.NewTenantUseCase(tenantRepo, tenantResolver, log)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, bookingTx)
	clientUC := usecase.NewClientUseCase(clientRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	agendaUC := agenda.NewUseCase(tenantRepo, appointmentRepo, employeeRepo, serviceRepo,
		infrapdf.NewMarotoAgendaGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vitta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		TenantUC:      tenantUC,
		AppointmentUC: appointmentUC,
		ClientUC:      clientUC,
		EmployeeUC:    employeeUC,
		ServiceUC:     serviceUC,
		AgendaUC:      agendaUC,
		Themes:        themes,
		Guards:        guards,
		JWTSecret:     cfg.JWT.Secret,
	})

	// El router queda listo cuando el listener acepta conexiones; los guards
	// esperan esta señal antes de evaluar.
	app.Hooks().OnListen(func(fiber.ListenData) error {
		routerReady.Set()
		return nil
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
