package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
)

// VariantHandler maneja las peticiones HTTP para variantes de producto.
type VariantHandler struct {
	uc *catalog.VariantUseCase
}

// NewVariantHandler construye el handler.
func NewVariantHandler(uc *catalog.VariantUseCase) *VariantHandler {
	return &VariantHandler{uc: uc}
}

// ListByProduct godoc
// @Summary      Listar variantes de un producto
// @Tags         variants
// @Produce      json
// @Param        tenantSlug  path  string  true  "Slug del tenant"
// @Param        productId   path  int     true  "ID del producto"
// @Success      200  {array}   dto.VariantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{tenantSlug}/products/{productId}/variants [get]
func (h *VariantHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "productId inválido")
	}
	out, err := h.uc.ListByProduct(c.UserContext(), int64(productID), GetTenant(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear variante
// @Description  productId sale de la ruta y el tenant de la sesión autorizada.
// @Tags         variants
// @Accept       json
// @Produce      json
// @Param        tenantSlug  path  string              true  "Slug del tenant"
// @Param        productId   path  int                 true  "ID del producto"
// @Param        body        body  dto.VariantRequest  true  "Datos de la variante"
// @Success      201  {object}  dto.VariantResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{tenantSlug}/products/{productId}/variants [post]
func (h *VariantHandler) Create(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "productId inválido")
	}
	var in dto.VariantRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), int64(productID), GetTenantID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar variante
// @Tags         variants
// @Accept       json
// @Produce      json
// @Param        tenantSlug  path  string              true  "Slug del tenant"
// @Param        variantId   path  int                 true  "ID de la variante"
// @Param        body        body  dto.VariantRequest  true  "Datos de la variante"
// @Success      200  {object}  dto.VariantResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{tenantSlug}/variants/{variantId} [put]
func (h *VariantHandler) Update(c *fiber.Ctx) error {
	variantID, err := c.ParamsInt("variantId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "variantId inválido")
	}
	var in dto.VariantRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), int64(variantID), GetTenantID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar variante (borrado lógico)
// @Tags         variants
// @Param        tenantSlug  path  string  true  "Slug del tenant"
// @Param        variantId   path  int     true  "ID de la variante"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{tenantSlug}/variants/{variantId} [delete]
func (h *VariantHandler) Delete(c *fiber.Ctx) error {
	variantID, err := c.ParamsInt("variantId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "variantId inválido")
	}
	if err := h.uc.Delete(c.UserContext(), int64(variantID), GetTenantID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
