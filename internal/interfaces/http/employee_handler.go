package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/employee"
	"github.com/jhoicas/Empleados-api/internal/domain"
)

// EmployeeHandler expone el alta de empleados y el catálogo de departamentos.
type EmployeeHandler struct {
	uc *employee.SubmitUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *employee.SubmitUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Submit procesa un registro candidato. Mapeo de rechazos a HTTP:
// validación/campos vacíos → 400, duplicado → 409, error de storage → 502.
// La razón del rechazo se devuelve tal cual para que la UI la muestre y el
// usuario corrija el formulario (la UI conserva lo tipeado).
func (h *EmployeeHandler) Submit(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result := h.uc.Submit(c.Context(), in)
	if result.Accepted {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "Employee added successfully!",
			"defaults": h.uc.DefaultForm(),
		})
	}

	status := fiber.StatusBadRequest
	switch result.Code {
	case domain.CodeDuplicate:
		status = fiber.StatusConflict
	case domain.CodeStorage:
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: result.Code, Message: result.Reason})
}

// Departments devuelve el catálogo en orden de carga más los defaults del formulario.
func (h *EmployeeHandler) Departments(c *fiber.Ctx) error {
	return c.JSON(dto.DepartmentsResponse{
		Departments: h.uc.Departments(),
		Defaults:    h.uc.DefaultForm(),
	})
}
