package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidCategory   = errors.New("categoría inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Errores estructurales de la importación masiva. Los tres abortan el lote
// completo sin aplicar la fila que los produce ni las siguientes; solo los
// fallos de aplicación por fila (ej. código duplicado) se toleran y reportan.

// MissingColumnError indica que falta una columna obligatoria en la cabecera del archivo.
type MissingColumnError struct {
	Field string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("columna obligatoria ausente: %s", e.Field)
}

// MissingRowFieldError indica una fila con un campo obligatorio vacío.
// Row es 1-based contando la cabecera (la primera fila de datos es la 2).
type MissingRowFieldError struct {
	Row   int
	Field string
}

func (e *MissingRowFieldError) Error() string {
	return fmt.Sprintf("fila %d: campo obligatorio vacío: %s", e.Row, e.Field)
}

// InvalidNumericError indica una fila con cantidad, umbral o precio no numérico.
type InvalidNumericError struct {
	Row int
}

func (e *InvalidNumericError) Error() string {
	return fmt.Sprintf("fila %d: valor numérico inválido", e.Row)
}
