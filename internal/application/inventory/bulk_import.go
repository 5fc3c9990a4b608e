package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"golang.org/x/text/cases"
)

// Campos lógicos del archivo de importación y sus variantes de cabecera
// aceptadas. La comparación normaliza con case folding y elimina espacios
// y guiones bajos, así "Product Name", "product_name" y "PRODUCTNAME"
// resuelven a la misma columna.
var headerAliases = map[string][]string{
	"name":       {"name", "productname"},
	"productId":  {"productid", "sku"},
	"price":      {"price", "cost"},
	"quantity":   {"quantity", "qty"},
	"unit":       {"unit"},
	"threshold":  {"threshold", "minstock"},
	"category":   {"category"},
	"expiryDate": {"expirydate", "expiry"},
}

// Columnas sin las cuales el archivo completo se rechaza antes de tocar una fila.
var mandatoryFields = []string{"name", "productId", "price", "quantity", "unit", "threshold"}

var headerFolder = cases.Fold()

// BulkImportUseCase valida y aplica una importación masiva de compras.
// Política de fallos asimétrica: los errores estructurales (columna ausente,
// campo obligatorio vacío, numérico inválido) abortan el lote completo; solo
// los fallos de aplicación de una fila concreta (código duplicado) se
// registran y el lote continúa.
type BulkImportUseCase struct {
	purchases *PurchaseUseCase
}

// NewBulkImportUseCase construye el caso de uso.
func NewBulkImportUseCase(purchases *PurchaseUseCase) *BulkImportUseCase {
	return &BulkImportUseCase{purchases: purchases}
}

// ImportCSV importa desde texto CSV crudo (primera fila = cabecera).
func (uc *BulkImportUseCase) ImportCSV(ctx context.Context, userID string, data []byte) (*dto.ImportResult, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: CSV malformado: %v", domain.ErrInvalidInput, err)
	}
	return uc.ImportRows(ctx, userID, rows)
}

// ImportRows importa desde filas ya tabuladas (CSV parseado o hoja XLSX).
// La numeración de filas en los errores es 1-based contando la cabecera.
func (uc *BulkImportUseCase) ImportRows(ctx context.Context, userID string, rows [][]string) (*dto.ImportResult, error) {
	rows = dropEmptyRows(rows)
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: el archivo no tiene filas de datos", domain.ErrInvalidInput)
	}

	index := resolveHeader(rows[0])
	for _, field := range mandatoryFields {
		if _, ok := index[field]; !ok {
			return nil, &domain.MissingColumnError{Field: field}
		}
	}

	result := &dto.ImportResult{ErrorRows: []dto.RowError{}}
	for i := 1; i < len(rows); i++ {
		rowNum := i + 1
		values := rows[i]
		get := func(field string) string {
			j, ok := index[field]
			if !ok || j >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[j])
		}

		for _, field := range mandatoryFields {
			if get(field) == "" {
				return nil, &domain.MissingRowFieldError{Row: rowNum, Field: field}
			}
		}

		quantity, errQty := parseCount(get("quantity"))
		threshold, errThr := parseCount(get("threshold"))
		price, errPrc := parsePrice(get("price"))
		if errQty != nil || errThr != nil || errPrc != nil {
			return nil, &domain.InvalidNumericError{Row: rowNum}
		}

		// Fallback a Other: asimetría deliberada con el alta individual,
		// que rechaza categorías desconocidas.
		category := entity.CategoryOther
		if c, ok := entity.ResolveCategory(get("category")); ok {
			category = c
		}

		spec := PurchaseSpec{
			ProductID:  get("productId"),
			Name:       get("name"),
			Category:   category,
			Price:      price,
			Quantity:   quantity,
			Unit:       get("unit"),
			ExpiryDate: ParseExpiry(get("expiryDate")),
			Threshold:  threshold,
		}
		if _, err := uc.purchases.Apply(ctx, userID, spec); err != nil {
			if isRowRecoverable(err) {
				result.ErrorRows = append(result.ErrorRows, dto.RowError{Row: rowNum, Error: err.Error()})
				continue
			}
			// Fallo de almacenamiento: la consistencia de la sesión ya no
			// está garantizada, se aborta el resto del lote.
			return nil, err
		}
		result.SuccessCount++
	}
	return result, nil
}

// resolveHeader mapea cada campo lógico al índice de su columna en la cabecera.
func resolveHeader(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}
	index := make(map[string]int, len(headerAliases))
	for field, aliases := range headerAliases {
		for i, h := range normalized {
			if slicesContains(aliases, h) {
				index[field] = i
				break
			}
		}
	}
	return index
}

func normalizeHeader(h string) string {
	folded := headerFolder.String(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "", "_", "").Replace(folded)
}

func slicesContains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// dropEmptyRows descarta filas completamente vacías (líneas en blanco del archivo).
func dropEmptyRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		empty := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}

// parseCount parsea cantidades y umbrales: enteros no negativos.
func parseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negativo: %d", n)
	}
	return n, nil
}

// parsePrice parsea el precio unitario: decimal no negativo.
func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negativo: %s", s)
	}
	return d, nil
}

// isRowRecoverable decide si el fallo de aplicación de una fila permite seguir
// con el resto del lote. Solo los conflictos (código duplicado) son tolerables.
func isRowRecoverable(err error) bool {
	return errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrConflict)
}
