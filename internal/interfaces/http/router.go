package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	ClientUC  *usecase.ClientUseCase
	Log       *logger.Logger
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	clientHandler := NewClientHandler(deps.ClientUC, deps.Log)

	// Users (público: el listado y el replace no llevan gate de rol)
	users := app.Group("/users")
	users.Get("/", userHandler.List)
	users.Put("/:user_id", userHandler.Replace)

	// Clients: el alta exige caller autenticado con ROLE_ADMIN; el patch no.
	clients := app.Group("/clients")
	clients.Post("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), clientHandler.Create)
	clients.Patch("/:client_id", clientHandler.Patch)
}
