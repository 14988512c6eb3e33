package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 redondea a dos decimales en la frontera de presentación.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatEuro renders an amount in es-ES style: "1.234,56 €".
func FormatEuro(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s%s,%02d €", sign, formatMiles(cents/100), cents%100)
}

// ParseEuro parses "1.234,56 €" or "1234.56" into a float amount.
func ParseEuro(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("importe vacío")
	}
	// es-ES: punto de miles, coma decimal.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

func formatMiles(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
