package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
)

// EmployeeHandler maneja los empleados de un tenant.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string  true  "id del tenant"
// @Param        body  body  dto.CreateEmployeeRequest  true  "empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse  "name y email son requeridos"
// @Router       /api/t/{tenantId}/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Create(c.Context(), c.Params("tenantId"), in)
	if err != nil {
		return crudError(c, err, "name y email son requeridos", "empleado no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// List GET /api/t/:tenantId/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/t/:tenantId/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetByID(c.Context(), c.Params("tenantId"), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(employee)
}

// Update PUT /api/t/:tenantId/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.Update(c.Context(), c.Params("tenantId"), c.Params("id"), in)
	if err != nil {
		return crudError(c, err, "name y email son requeridos", "empleado no encontrado")
	}
	return c.JSON(employee)
}

// Delete DELETE /api/t/:tenantId/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("tenantId"), c.Params("id")); err != nil {
		return crudError(c, err, "", "empleado no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
