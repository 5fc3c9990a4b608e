package inventory

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fechas de vencimiento: se aceptan tres formas de entrada y ninguna produce
// error. Una fecha que no parsea significa "sin vencimiento".
//
//	2024-03-15            ISO
//	15-03-2024, 15/03/2024 formato europeo (export típico de Excel)
//	45291                 serial Excel (días desde 1899-12-30)
//
// Un número solo se trata como serial si supera excelSerialMin; así un valor
// numérico pequeño en la columna no se convierte en una fecha de 1899.
var (
	excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe = regexp.MustCompile(`^\d{2}[-/]\d{2}[-/]\d{4}$`)
)

const excelSerialMin = 30000

// ParseExpiry interpreta la fecha de vencimiento. Devuelve nil si está vacía o
// no parsea en ninguna de las formas aceptadas; nunca error.
func ParseExpiry(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n <= excelSerialMin {
			return nil
		}
		t := excelEpoch.Add(time.Duration(n * float64(24*time.Hour)))
		return &t
	}

	if isoDateRe.MatchString(s) {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return &t
		}
		return nil
	}

	if dmyDateRe.MatchString(s) {
		layout := "02-01-2006"
		if strings.Contains(s, "/") {
			layout = "02/01/2006"
		}
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
