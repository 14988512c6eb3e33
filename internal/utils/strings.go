package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar lowercases and strips diacritics so "Guía Local" matches
// "guia local". Used wherever a supplier tipo is compared against a
// service category.
func Normalizar(s string) string {
	out, _, err := transform.String(quitarAcentos, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// MismaCategoria compara dos etiquetas de categoría/tipo ignorando
// mayúsculas, acentos y separadores (_ y espacios).
func MismaCategoria(a, b string) bool {
	limpiar := func(s string) string {
		s = Normalizar(s)
		s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
		return strings.Join(strings.Fields(s), " ")
	}
	return limpiar(a) == limpiar(b)
}

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
