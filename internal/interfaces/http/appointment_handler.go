package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitta-app/vitta-api/internal/application/agenda"
	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
	"github.com/vitta-app/vitta-api/internal/domain"
)

// AppointmentHandler maneja la agenda de citas de un tenant.
type AppointmentHandler struct {
	uc     *usecase.AppointmentUseCase
	agenda *agenda.UseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase, ag *agenda.UseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, agenda: ag}
}

// Create godoc
// @Summary      Crear cita
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        tenantId  path  string  true  "id del tenant"
// @Param        body  body  dto.CreateAppointmentRequest  true  "cita"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      409   {object}  dto.ErrorResponse  "solapamiento de agenda"
// @Router       /api/t/{tenantId}/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	appt, err := h.uc.Create(c.Context(), c.Params("tenantId"), in)
	if err != nil {
		return appointmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

// List GET /api/t/:tenantId/appointments?date=2026-08-29  (o ?from=&to=)
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")

	if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
		fromDate, err1 := parseDate(from)
		toDate, err2 := parseDate(to)
		if err1 != nil || err2 != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben ser fechas YYYY-MM-DD"})
		}
		list, err := h.uc.ListByRange(c.Context(), tenantID, fromDate, toDate)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(list)
	}

	date, err := parseDate(c.Query("date", time.Now().Format("2006-01-02")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser una fecha YYYY-MM-DD"})
	}
	list, err := h.uc.ListByDate(c.Context(), tenantID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/t/:tenantId/appointments/:id
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	appt, err := h.uc.GetByID(c.Context(), c.Params("tenantId"), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if appt == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita no encontrada"})
	}
	return c.JSON(appt)
}

// Update PUT /api/t/:tenantId/appointments/:id (patch parcial)
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	appt, err := h.uc.Update(c.Context(), c.Params("tenantId"), c.Params("id"), in)
	if err != nil {
		return appointmentError(c, err)
	}
	return c.JSON(appt)
}

// Delete DELETE /api/t/:tenantId/appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("tenantId"), c.Params("id")); err != nil {
		return appointmentError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AgendaPDF GET /api/t/:tenantId/appointments/agenda.pdf?date=2026-08-29
func (h *AppointmentHandler) AgendaPDF(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date", time.Now().Format("2006-01-02")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser una fecha YYYY-MM-DD"})
	}
	pdf, err := h.agenda.DailyPDF(c.Context(), c.Params("tenantId"), date)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tenant no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="agenda-`+date.Format("2006-01-02")+`.pdf"`)
	return c.Send(pdf)
}

// appointmentError mapea los errores de dominio de la agenda a HTTP.
func appointmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrOverlap):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVERLAP", Message: "el empleado ya tiene una cita en ese horario"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de cita inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseDate interpreta fechas YYYY-MM-DD en hora local del servidor.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
