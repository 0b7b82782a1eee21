package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// UserHandler maneja las peticiones HTTP de usuarios.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List GET /users?username=<exacto>
func (h *UserHandler) List(c *fiber.Ctx) error {
	res, err := h.uc.List(c.Query("username"))
	if err != nil {
		h.log.Error().Err(err).Msg("listar usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
	}
	return c.JSON(res)
}

// Replace PUT /users/:user_id
// Semántica parcial: si el body no trae username, el valor actual se conserva.
func (h *UserHandler) Replace(c *fiber.Ctx) error {
	id, err := c.ParamsInt("user_id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid JSON body"})
	}
	if err := h.uc.ReplaceUsername(int64(id), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrUsernameTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Username already taken by another user"})
		default:
			h.log.Error().Err(err).Int("user_id", id).Msg("actualizar usuario")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "User updated successfully"})
}
