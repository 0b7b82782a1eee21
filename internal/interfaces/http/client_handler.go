package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc  *usecase.ClientUseCase
	log *logger.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// Create POST /clients (solo ROLE_ADMIN; el gate vive en el router).
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid JSON body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Missing required fields"})
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Company already taken by another client"})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Email already taken by another client"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Missing required fields"})
		default:
			h.log.Error().Err(err).Msg("crear cliente")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Client created successfully"})
}

// Patch PATCH /clients/:client_id
// Acepta un objeto JSON con cualquier subconjunto de los campos mutables
// (name, email, phone, user_id, company_id); otras claves rechazan con 400.
func (h *ClientHandler) Patch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("client_id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Client not found"})
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid JSON body"})
	}
	if err := h.uc.Patch(int64(id), fields); err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Client not found"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid or unknown client field(s)"})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Email already taken by another client"})
		case errors.Is(err, domain.ErrCompanyTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Company already taken by another client"})
		default:
			h.log.Error().Err(err).Int("client_id", id).Msg("actualizar cliente")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Internal server error"})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Client field(s) updated successfully"})
}
