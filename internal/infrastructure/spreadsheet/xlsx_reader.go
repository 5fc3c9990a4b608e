// Package spreadsheet adapta archivos XLSX al formato tabular que consume la
// importación masiva.
package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX lee la primera hoja de un libro XLSX y devuelve sus filas como
// matriz de strings (misma forma que un CSV parseado). Las celdas vienen con
// el valor mostrado: las fechas en serial de Excel llegan como número y las
// resuelve el parser de fechas de la importación.
func ReadXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: XLSX malformado: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return rows, nil
}
