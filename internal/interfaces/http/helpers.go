package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gabodev/marketplace-api/internal/application/dto"
)

// parseID lee el parámetro :id de la ruta como entero. Un id numérico que no
// existe en el store (incluidos cero y negativos) termina en 404 aguas abajo.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// badID respuesta 400 para un :id no numérico.
func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_ID", Message: "el id debe ser numérico",
	})
}

// internalError registra el error con detalle en el log y responde 500 con un
// mensaje genérico. El diagnóstico del driver nunca viaja al cliente.
func internalError(c *fiber.Ctx, err error, op string) error {
	log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno del servidor",
	})
}
