package dto

// RowError fallo de aplicación de una fila concreta de la importación masiva.
// Row es 1-based contando la cabecera (la primera fila de datos es la 2).
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult resultado de una importación masiva: filas aplicadas y fallos
// por fila tolerados. Los errores estructurales (columna o campo obligatorio
// ausente, numérico inválido) no aparecen aquí: abortan la operación completa.
type ImportResult struct {
	SuccessCount int        `json:"success_count"`
	ErrorRows    []RowError `json:"error_rows"`
}
