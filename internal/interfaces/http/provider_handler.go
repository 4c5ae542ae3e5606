package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gabodev/marketplace-api/internal/application/dto"
	"github.com/gabodev/marketplace-api/internal/application/usecase"
	"github.com/gabodev/marketplace-api/internal/domain"
)

// ProviderHandler maneja la variante de archivo plano: registro, calificación
// y listado de proveedores.
type ProviderHandler struct {
	uc *usecase.ProviderUseCase
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// Registro godoc
// @Summary      Registrar proveedor (archivo plano)
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.RegistroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /registro [post]
func (h *ProviderHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if missing := in.MissingFields(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Faltan campos obligatorios: " + strings.Join(missing, ", "),
		})
	}
	out, err := h.uc.Registrar(in)
	if err != nil {
		return internalError(c, err, "registro proveedor")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistroResponse{
		Message:   "Proveedor registrado con éxito.",
		Proveedor: *out,
	})
}

// Calificar godoc
// @Summary      Actualizar calificación de un proveedor por email
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalificarRequest  true  "email y calificación"
// @Success      200   {object}  dto.CalificadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /calificar [post]
func (h *ProviderHandler) Calificar(c *fiber.Ctx) error {
	var in dto.CalificarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Calificacion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y calificacion son requeridos"})
	}
	out, err := h.uc.Calificar(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No existe un proveedor con ese email."})
		}
		return internalError(c, err, "calificar proveedor")
	}
	return c.JSON(out)
}

// ListarDatos godoc
// @Summary      Listar proveedores (archivo plano)
// @Tags         proveedores
// @Produce      json
// @Success      200  {array}  dto.ProviderResponse
// @Router       /usuarios-datos [get]
func (h *ProviderHandler) ListarDatos(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return internalError(c, err, "listar proveedores")
	}
	return c.JSON(out)
}
