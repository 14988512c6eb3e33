package utils

import "testing"

func TestNormalizar(t *testing.T) {
	casos := map[string]string{
		"Guía Local":  "guia local",
		"  Autocar  ": "autocar",
		"Málaga":      "malaga",
		"PEÑÍSCOLA":   "peñiscola",
		"":            "",
	}
	for in, want := range casos {
		if got := Normalizar(in); got != want {
			t.Fatalf("Normalizar(%q): got %q want %q", in, got, want)
		}
	}
}

func TestMismaCategoria(t *testing.T) {
	iguales := [][2]string{
		{"Guía local", "guia_local"},
		{"guia-local", "GUIA LOCAL"},
		{"Autobús", "autobus"},
		{"  hotel ", "Hotel"},
	}
	for _, par := range iguales {
		if !MismaCategoria(par[0], par[1]) {
			t.Fatalf("MismaCategoria(%q, %q) debería ser true", par[0], par[1])
		}
	}
	if MismaCategoria("hotel", "restaurante") {
		t.Fatalf("categorías distintas no deben coincidir")
	}
}

func TestFormatEuro(t *testing.T) {
	casos := map[float64]string{
		0:        "0,00 €",
		25:       "25,00 €",
		1234.56:  "1.234,56 €",
		-99.9:    "-99,90 €",
		1000000:  "1.000.000,00 €",
		141.575:  "141,58 €",
	}
	for in, want := range casos {
		if got := FormatEuro(in); got != want {
			t.Fatalf("FormatEuro(%v): got %q want %q", in, got, want)
		}
	}
}

func TestParseEuro(t *testing.T) {
	casos := map[string]float64{
		"1.234,56 €": 1234.56,
		"25":         25,
		"99,9":       99.9,
		"1234.56":    1234.56,
	}
	for in, want := range casos {
		got, err := ParseEuro(in)
		if err != nil {
			t.Fatalf("ParseEuro(%q) devolvió error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseEuro(%q): got %v want %v", in, got, want)
		}
	}
	if _, err := ParseEuro("  "); err == nil {
		t.Fatalf("importe vacío debe dar error")
	}
}

func TestEjercicioDe(t *testing.T) {
	if got := EjercicioDe("2026-05-04"); got != 2026 {
		t.Fatalf("EjercicioDe: got %d want 2026", got)
	}
	if got := EjercicioDe("no es fecha"); got != 0 {
		t.Fatalf("fecha inválida: got %d want 0", got)
	}
}
