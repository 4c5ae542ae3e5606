package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabodev/marketplace-api/internal/application/auth"
	"github.com/gabodev/marketplace-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ServiceUC  *usecase.ServiceUseCase
	ProviderUC *usecase.ProviderUseCase
}

// Router registra las rutas de la API. Todas las rutas son públicas: el login
// no emite sesión y ningún endpoint verifica identidad.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Usuarios (relacional)
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/usuarios", userHandler.List)
	app.Get("/usuarios/:id", userHandler.GetByID)
	app.Put("/usuarios/:id", userHandler.Update)
	app.Delete("/usuarios/:id", userHandler.Delete)

	// Servicios (relacional)
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	app.Post("/servicios", serviceHandler.Create)
	app.Get("/servicios", serviceHandler.List)
	app.Get("/servicios/:id", serviceHandler.GetByID)
	app.Put("/servicios/:id", serviceHandler.Update)
	app.Delete("/servicios/:id", serviceHandler.Delete)

	// Proveedores (archivo plano)
	providerHandler := NewProviderHandler(deps.ProviderUC)
	app.Post("/registro", providerHandler.Registro)
	app.Post("/calificar", providerHandler.Calificar)
	app.Get("/usuarios-datos", providerHandler.ListarDatos)
}
