// Package pricing contiene la regla de precio de venta a partir de costo y margen.
package pricing

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Límites de un número aceptado. Fuera de ellos la aritmética decimal deja de ser acotada.
const (
	MaxExponent = 20
	MaxDigits   = 40
)

// ErrOutOfRange número con exponente o cantidad de dígitos fuera de los límites.
var ErrOutOfRange = errors.New("pricing: número fuera de rango")

var (
	hundred = decimal.NewFromInt(100)

	decimalPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	intPrefix     = regexp.MustCompile(`^[+-]?\d+`)
)

// Derive calcula cost * (1 + margin/100) redondeado a 2 decimales (mitad lejos de cero).
func Derive(cost, marginPercent decimal.Decimal) decimal.Decimal {
	return cost.Mul(hundred.Add(marginPercent)).Div(hundred).Round(2)
}

// DerivePrice es Derive sobre la entrada tal cual la escribe el usuario.
// Entrada vacía o no numérica cuenta como cero; nunca falla.
func DerivePrice(cost, marginPercent string) decimal.Decimal {
	return Derive(ParseDecimal(cost), ParseDecimal(marginPercent))
}

// ParseDecimal interpreta el prefijo numérico de s ("12.5kg" -> 12.5). Sin prefijo numérico o fuera
// de rango (ver NewDecimal) devuelve cero.
func ParseDecimal(s string) decimal.Decimal {
	m := decimalPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	m = strings.TrimPrefix(m, "+")
	if i := strings.IndexAny(m, "eE"); i < 0 {
		m = strings.TrimSuffix(m, ".")
	} else if m[i-1] == '.' {
		m = m[:i-1] + m[i:]
	}
	if strings.HasPrefix(m, ".") {
		m = "0" + m
	} else if strings.HasPrefix(m, "-.") {
		m = "-0" + m[1:]
	}
	d, err := NewDecimal(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NewDecimal interpreta s completo como decimal. Rechaza exponentes mayores que MaxExponent
// en valor absoluto y mantisas de más de MaxDigits caracteres.
func NewDecimal(s string) (decimal.Decimal, error) {
	mantissa := s
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		exp, err := strconv.Atoi(strings.TrimPrefix(s[i+1:], "+"))
		if err != nil || exp > MaxExponent || exp < -MaxExponent {
			return decimal.Zero, ErrOutOfRange
		}
	}
	if len(mantissa) > MaxDigits {
		return decimal.Zero, ErrOutOfRange
	}
	return decimal.NewFromString(s)
}

// ParseInt interpreta el prefijo entero de s ("3.7" -> 3). Sin prefijo entero devuelve cero.
func ParseInt(s string) int {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// Format representa un importe con exactamente dos decimales.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
