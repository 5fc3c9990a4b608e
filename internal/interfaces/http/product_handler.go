package http

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/application/inventory"
)

// XLSXReader convierte un libro XLSX en filas tabulares para la importación.
type XLSXReader func(data []byte) ([][]string, error)

// ProductHandler maneja las peticiones HTTP de productos y movimientos de stock (protegido).
type ProductHandler struct {
	purchases *inventory.PurchaseUseCase
	sales     *inventory.SaleUseCase
	importer  *inventory.BulkImportUseCase
	readXLSX  XLSXReader
}

// NewProductHandler construye el handler.
func NewProductHandler(
	purchases *inventory.PurchaseUseCase,
	sales *inventory.SaleUseCase,
	importer *inventory.BulkImportUseCase,
	readXLSX XLSXReader,
) *ProductHandler {
	return &ProductHandler{purchases: purchases, sales: sales, importer: importer, readXLSX: readXLSX}
}

// Create godoc
// @Summary      Crear producto con su compra inicial
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.purchases.CreatePurchase(c.Context(), userID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(p))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.purchases.List(c.Context(), userID, page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Registrar compra de un producto existente
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestockRequest  true  "Código de producto y cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/restock [post]
func (h *ProductHandler) Restock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.purchases.Restock(c.Context(), userID, in.ProductID, in.Quantity)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// Sell godoc
// @Summary      Vender unidades de un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellRequest  true  "Código de producto y cantidad"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/sell [post]
func (h *ProductHandler) Sell(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.sales.Sell(c.Context(), userID, in.ProductID, in.Quantity)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromInvoice(inv))
}

// Stock godoc
// @Summary      Stock actual de un producto por su código
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Código de producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/stock [get]
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	code := c.Params("productId")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	p, err := h.purchases.CurrentStock(c.Context(), userID, code)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// Import godoc
// @Summary      Importación masiva de productos (CSV o XLSX)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV o XLSX con cabecera"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	userID := GetUserID(c)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	var result *dto.ImportResult
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		rows, err := h.readXLSX(data)
		if err != nil {
			return respondDomainError(c, err)
		}
		result, err = h.importer.ImportRows(c.Context(), userID, rows)
		if err != nil {
			return respondDomainError(c, err)
		}
	default:
		result, err = h.importer.ImportCSV(c.Context(), userID, data)
		if err != nil {
			return respondDomainError(c, err)
		}
	}
	return c.JSON(result)
}
