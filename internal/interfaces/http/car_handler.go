package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autolux-api/internal/application/dto"
	"github.com/jhoicas/autolux-api/internal/application/usecase"
	"github.com/jhoicas/autolux-api/internal/domain"
)

// CarHandler maneja las peticiones HTTP para Car (protegido).
type CarHandler struct {
	uc *usecase.CarUseCase
}

// NewCarHandler construye el handler.
func NewCarHandler(uc *usecase.CarUseCase) *CarHandler {
	return &CarHandler{uc: uc}
}

// Create godoc
// @Summary      Crear auto
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarRequest  true  "Datos del auto; brandId o brandName"
// @Success      201   {object}  dto.CarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cars [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if code, msg, ok := validateCar(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return carError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar autos
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CarResponse
// @Router       /api/cars [get]
func (h *CarHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener auto por ID
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del auto"
// @Success      200  {object}  dto.CarResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [get]
func (h *CarHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "auto no encontrado"})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar autos por filtros opcionales (AND)
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Param        model    query  string  false  "Substring del modelo"
// @Param        brand    query  string  false  "Substring del nombre de marca"
// @Param        year     query  int     false  "Año exacto"
// @Param        price    query  number  false  "Precio exacto"
// @Param        mileage  query  int     false  "Kilometraje exacto"
// @Param        color    query  string  false  "Substring del color"
// @Param        isSold   query  bool    false  "Vendido"
// @Success      200  {array}  dto.CarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cars/search [get]
func (h *CarHandler) Search(c *fiber.Ctx) error {
	in := dto.SearchCarsRequest{
		Model: c.Query("model"),
		Brand: c.Query("brand"),
		Color: c.Query("color"),
	}
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year debe ser un entero"})
		}
		in.Year = &n
	}
	if v := c.Query("price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price debe ser numérico"})
		}
		in.Price = &d
	}
	if v := c.Query("mileage"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mileage debe ser un entero"})
		}
		in.Mileage = &n
	}
	if v := c.Query("isSold"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "isSold debe ser booleano"})
		}
		in.IsSold = &b
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar auto
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del auto"
// @Param        body  body  dto.CreateCarRequest  true  "Datos del auto"
// @Success      200   {object}  dto.CarResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [put]
func (h *CarHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Model == "" || in.Color == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "model y color son requeridos"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return carError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "auto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar auto
// @Tags         cars
// @Security     Bearer
// @Param        id  path  string  true  "ID del auto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "auto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// validateCar valida los campos mínimos del request de auto.
func validateCar(in dto.CreateCarRequest) (code, msg string, ok bool) {
	if in.Model == "" || in.Color == "" {
		return "VALIDATION", "model y color son requeridos", false
	}
	if in.Year == 0 {
		return "VALIDATION", "year es requerido", false
	}
	return "", "", true
}

// carError mapea los errores de vinculación de marca y demás fallos del caso de uso.
func carError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrBrandNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BRAND_NOT_FOUND", Message: "brandId no existe"})
	case errors.Is(err, domain.ErrMissingBrand):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_BRAND", Message: "debe indicar brandId o brandName"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
