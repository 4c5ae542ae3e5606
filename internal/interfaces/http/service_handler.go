package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gabodev/marketplace-api/internal/application/dto"
	"github.com/gabodev/marketplace-api/internal/application/usecase"
	"github.com/gabodev/marketplace-api/internal/domain"
)

// ServiceHandler maneja las peticiones HTTP para el catálogo de servicios.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.CreatedServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /servicios [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if missing := in.MissingFields(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Faltan campos obligatorios: " + strings.Join(missing, ", "),
		})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el precio no puede ser negativo"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Ya existe un servicio con ese nombre."})
		}
		return internalError(c, err, "create servicio")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedServiceResponse{
		Message:  "Servicio creado con éxito.",
		Servicio: *out,
	})
}

// List godoc
// @Summary      Listar servicios
// @Tags         servicios
// @Produce      json
// @Success      200  {object}  dto.ServiceListResponse
// @Router       /servicios [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err, "list servicios")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener servicio por ID
// @Tags         servicios
// @Produce      json
// @Param        id   path  int  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /servicios/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err, "get servicio")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Servicio no encontrado."})
	}
	return c.JSON(dto.ServiceDetailResponse{
		Message:  "Servicio recuperado con éxito.",
		Servicio: *out,
	})
}

// Update godoc
// @Summary      Actualizar servicio (parcial)
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del servicio"
// @Param        body  body  dto.UpdateServiceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UpdatedServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /servicios/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "Se debe proporcionar al menos un campo para actualizar.",
			})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Ya existe un servicio con ese nombre."})
		}
		return internalError(c, err, "update servicio")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Servicio no encontrado para actualizar."})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar servicio
// @Tags         servicios
// @Produce      json
// @Param        id   path  int  true  "ID del servicio"
// @Success      200  {object}  dto.DeletedServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /servicios/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	found, err := h.uc.Delete(id)
	if err != nil {
		return internalError(c, err, "delete servicio")
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Servicio no encontrado para eliminar."})
	}
	return c.JSON(dto.DeletedServiceResponse{
		Message:   "Servicio eliminado con éxito.",
		ServiceID: id,
	})
}
