package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
	"github.com/vitta-app/vitta-api/internal/domain"
)

// ClientHandler maneja las fichas de cliente de un tenant.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ficha de cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string  true  "id del tenant"
// @Param        body  body  dto.CreateClientRequest  true  "cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse  "name y phone son requeridos"
// @Router       /api/t/{tenantId}/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Create(c.Context(), c.Params("tenantId"), in)
	if err != nil {
		return crudError(c, err, "name y phone son requeridos", "ficha no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /api/t/:tenantId/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/t/:tenantId/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Context(), c.Params("tenantId"), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if client == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ficha no encontrada"})
	}
	return c.JSON(client)
}

// Update PUT /api/t/:tenantId/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Update(c.Context(), c.Params("tenantId"), c.Params("id"), in)
	if err != nil {
		return crudError(c, err, "name y phone son requeridos", "ficha no encontrada")
	}
	return c.JSON(client)
}

// Delete DELETE /api/t/:tenantId/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("tenantId"), c.Params("id")); err != nil {
		return crudError(c, err, "", "ficha no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// crudError mapeo común de errores de los CRUD por tenant.
func crudError(c *fiber.Ctx, err error, validationMsg, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMsg})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
