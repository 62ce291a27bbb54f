package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide retorna 0 quando o denominador é zero
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// FormatNumber formata v com separadores de milhar e decimal informados
func FormatNumber(v float64, decimals int, thousandsSep, decimalSep string) string {
	digits := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)
	intPart, fracPart, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if v < 0 && strings.Trim(digits, "0.") != "" {
		b.WriteByte('-')
	}

	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteRune(c)
	}

	if fracPart != "" {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}

	return b.String()
}

// FormatBRL formata valores monetários no padrão brasileiro: R$ 1.160,00
func FormatBRL(v float64) string {
	return "R$ " + FormatNumber(v, 2, ".", ",")
}

// FormatCount formata contagens com ponto como separador de milhar: 1.234
func FormatCount(n int) string {
	return FormatNumber(float64(n), 0, ".", "")
}

// FormatPercent formata uma razão (0.267) como porcentagem (26.7%)
func FormatPercent(ratio float64, decimals int) string {
	return FormatNumber(ratio*100, decimals, ",", ".") + "%"
}
