package services

import (
	"bytes"
	"strings"
	"testing"

	"agencia/internal/domain"
	"agencia/internal/domain/models"
	"agencia/internal/quotation"
)

func TestDocsServicePresupuestoPDF(t *testing.T) {
	svc := DocsService{
		LoadExpediente: func(id int64) (models.Expediente, error) {
			return models.Expediente{
				ID:            7,
				Codigo:        "EXP-2026-001",
				ClienteNombre: "IES La Rosaleda",
				Destino:       "Granada",
				FechaSalida:   "2026-05-04",
				FechaRegreso:  "2026-05-06",
				Presupuesto: &models.Presupuesto{
					Servicios: []quotation.Servicio{
						{Categoria: quotation.CategoriaBus, Nombre: "Autocar 55 plazas", Coste: 1000},
						{Categoria: quotation.CategoriaHotel, Nombre: "Hotel Genil", Coste: 50, Noches: 2},
					},
					TotalPasajeros: 40,
					Gratuidades:    2,
					PrecioVentaPax: 180,
				},
			}, nil
		},
	}

	data, filename, err := svc.GenerarPresupuestoPDF(7)
	if err != nil {
		t.Fatalf("GenerarPresupuestoPDF devolvió error: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("el resultado no parece un PDF (%d bytes)", len(data))
	}
	if filename != "PRESUPUESTO_EXP-2026-001.pdf" {
		t.Fatalf("filename: got %q", filename)
	}
}

func TestDocsServicePresupuestoPDFSinPresupuesto(t *testing.T) {
	svc := DocsService{
		LoadExpediente: func(id int64) (models.Expediente, error) {
			return models.Expediente{ID: id}, nil
		},
	}

	_, _, err := svc.GenerarPresupuestoPDF(3)
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("se esperaba error de validación, got %v", err)
	}
}

func TestDocsServiceCierrePDF(t *testing.T) {
	svc := DocsService{
		LoadCierre: func(id int64) (models.Cierre, error) {
			return models.Cierre{
				ID:        2,
				Titulo:    "Cierre Granada mayo",
				Ejercicio: 2026,
				Lineas: []models.LineaCierre{
					{Concepto: "Venta grupo", Tipo: models.LineaIngreso, Importe: 6840},
					{Concepto: "Autocar", Tipo: models.LineaGasto, Importe: 1000},
				},
			}, nil
		},
	}

	data, filename, err := svc.GenerarCierrePDF(2)
	if err != nil {
		t.Fatalf("GenerarCierrePDF devolvió error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("el resultado no parece un PDF")
	}
	if !strings.HasPrefix(filename, "CIERRE_2026_") {
		t.Fatalf("filename: got %q", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("Cierre Granada/mayo"); got != "Cierre_Granada-mayo" {
		t.Fatalf("got %q", got)
	}
	if got := safeFilenamePart("  "); got != "sin_nombre" {
		t.Fatalf("got %q", got)
	}
}
