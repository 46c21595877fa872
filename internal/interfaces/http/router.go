package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitta-app/vitta-api/internal/application/agenda"
	"github.com/vitta-app/vitta-api/internal/application/auth"
	"github.com/vitta-app/vitta-api/internal/application/guard"
	"github.com/vitta-app/vitta-api/internal/application/theme"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	TenantUC      *usecase.TenantUseCase
	AppointmentUC *usecase.AppointmentUseCase
	ClientUC      *usecase.ClientUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	ServiceUC     *usecase.ServiceUseCase
	AgendaUC      *agenda.UseCase
	Themes        *theme.Resolver
	Guards        *guard.Chain
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Branding (público: el login necesita el tema antes de autenticar)
	brandingHandler := NewBrandingHandler(deps.Themes)
	branding := app.Group("/branding/:tenantId")
	branding.Get("/theme.json", brandingHandler.Theme)
	branding.Get("/variables.css", brandingHandler.VariablesCSS)

	api := app.Group("/api")

	// Auth (público salvo me/logout)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Administración de tenants (solo owners; el guard redirige a los demás)
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants := api.Group("/tenants",
		GuardMiddleware(deps.JWTSecret, deps.Guards.RequireOwner),
		AuthMiddleware(deps.JWTSecret),
	)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Put("/:id/name", tenantHandler.UpdateName)
	tenants.Put("/:id/active", tenantHandler.SetActive)

	// Scope de tenant: primero tenant (existe y activo), después auth
	tenantScope := api.Group("/t/:tenantId",
		GuardMiddleware(deps.JWTSecret, deps.Guards.RequireTenantAndAuth),
		AuthMiddleware(deps.JWTSecret),
	)

	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC, deps.AgendaUC)
	appointments := tenantScope.Group("/appointments")
	appointments.Get("/agenda.pdf", appointmentHandler.AgendaPDF)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	clientHandler := NewClientHandler(deps.ClientUC)
	clients := tenantScope.Group("/clients")
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := tenantScope.Group("/employees")
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services := tenantScope.Group("/services")
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)
}
