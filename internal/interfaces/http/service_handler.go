package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
)

// ServiceHandler maneja los servicios del salón de un tenant.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string  true  "id del tenant"
// @Param        body  body  dto.CreateServiceRequest  true  "servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse  "name, duration_min y price inválidos"
// @Router       /api/t/{tenantId}/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.uc.Create(c.Context(), c.Params("tenantId"), in)
	if err != nil {
		return crudError(c, err, "name, duration_min positiva y price no negativo son requeridos", "servicio no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// List GET /api/t/:tenantId/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/t/:tenantId/services/:id
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	service, err := h.uc.GetByID(c.Context(), c.Params("tenantId"), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if service == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(service)
}

// Update PUT /api/t/:tenantId/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.uc.Update(c.Context(), c.Params("tenantId"), c.Params("id"), in)
	if err != nil {
		return crudError(c, err, "name, duration_min positiva y price no negativo son requeridos", "servicio no encontrado")
	}
	return c.JSON(service)
}

// Delete DELETE /api/t/:tenantId/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("tenantId"), c.Params("id")); err != nil {
		return crudError(c, err, "", "servicio no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
