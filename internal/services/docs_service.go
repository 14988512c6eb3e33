package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"agencia/internal/domain"
	"agencia/internal/domain/models"
	"agencia/internal/quotation"
	"agencia/internal/repositories"
	"agencia/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService genera la hoja de presupuesto y el informe de cierre en PDF.
type DocsService struct {
	Expedientes repositories.ExpedienteRepository
	Cierres     repositories.CierreRepository
	RequestID   string

	// Loaders permiten inyectar datos en tests sin base de datos.
	LoadExpediente func(int64) (models.Expediente, error)
	LoadCierre     func(int64) (models.Cierre, error)
}

func (s DocsService) GenerarPresupuestoPDF(expedienteID int64) ([]byte, string, error) {
	exp, err := s.loadExpediente(expedienteID)
	if err != nil {
		return nil, "", err
	}
	if exp.Presupuesto == nil {
		return nil, "", domain.ValidationError{Field: "presupuesto", Msg: "el expediente no tiene presupuesto guardado"}
	}
	utils.LogEvent(s.RequestID, "docs", "presupuesto_pdf", fmt.Sprintf("expediente_id=%d", expedienteID))
	return buildPresupuestoPDF(exp)
}

func (s DocsService) GenerarCierrePDF(cierreID int64) ([]byte, string, error) {
	cierre, err := s.loadCierre(cierreID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "cierre_pdf", fmt.Sprintf("cierre_id=%d", cierreID))
	return buildCierrePDF(cierre)
}

func (s DocsService) loadExpediente(id int64) (models.Expediente, error) {
	if s.LoadExpediente != nil {
		return s.LoadExpediente(id)
	}
	return s.Expedientes.GetByID(id)
}

func (s DocsService) loadCierre(id int64) (models.Cierre, error) {
	if s.LoadCierre != nil {
		return s.LoadCierre(id)
	}
	return s.Cierres.GetByID(id)
}

func buildPresupuestoPDF(exp models.Expediente) ([]byte, string, error) {
	p := exp.Presupuesto
	res := quotation.Calcular(p.Servicios, p.Parametros()).Redondeado()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Presupuesto", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("") // acentos con fuentes core
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("PRESUPUESTO DE VIAJE"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lineas := []string{
		fmt.Sprintf("Expediente : %s", safe(exp.Codigo, fmt.Sprintf("#%d", exp.ID))),
		fmt.Sprintf("Cliente    : %s", safe(exp.ClienteNombre, "-")),
		fmt.Sprintf("Destino    : %s", safe(exp.Destino, "-")),
		fmt.Sprintf("Fechas     : %s a %s", safe(exp.FechaSalida, "-"), safe(exp.FechaRegreso, "-")),
		fmt.Sprintf("Pasajeros  : %d (%d de pago, %d gratuidades)", res.TotalPasajeros, res.PasajerosDePago, p.Gratuidades),
	}
	for _, l := range lineas {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Servicios")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, srv := range p.Servicios {
		desc := safe(srv.Nombre, string(srv.Categoria))
		if srv.Proveedor != "" {
			desc += " - " + srv.Proveedor
		}
		pdf.Cell(130, 6, tr(fmt.Sprintf("%s (%s)", desc, srv.Categoria)))
		pdf.CellFormat(40, 6, tr(utils.FormatEuro(srv.Coste)), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Totales")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	totales := []struct {
		label string
		valor float64
	}{
		{"Coste base por pax", res.CosteBasePax},
		{"Recargo gratuidades por pax", res.RecargoGratuidadPax},
		{"Bonificación por pax", p.Bonificacion},
		{"Coste real por pax", res.CosteRealPax},
		{"Precio de venta por pax", res.PrecioVentaPax},
		{"Margen por pax", res.MargenPax},
		{"Coste total", res.CosteTotal},
		{"Ingresos totales", res.IngresosTotales},
		{"Beneficio total", res.BeneficioTotal},
		{"IVA (21% sobre beneficio)", res.IVA},
		{"Beneficio neto", res.BeneficioNeto},
	}
	for _, t := range totales {
		pdf.Cell(130, 6, tr(t.label))
		pdf.CellFormat(40, 6, tr(utils.FormatEuro(t.valor)), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Margen sobre coste: %.2f%%. Documento generado el %s.",
		res.MargenPorcentaje, time.Now().Format("2006-01-02 15:04"))), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("PRESUPUESTO_%s.pdf", safeFilenamePart(safe(exp.Codigo, fmt.Sprintf("%d", exp.ID))))
	return buf.Bytes(), filename, nil
}

func buildCierrePDF(c models.Cierre) ([]byte, string, error) {
	resultados := CalcularCierre(c.Lineas)
	if c.Resultados != nil {
		resultados = *c.Resultados
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cierre", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("CIERRE DE EXPEDIENTE"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Cierre     : %s", safe(c.Titulo, fmt.Sprintf("#%d", c.ID)))))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Ejercicio  : %d", c.Ejercicio)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Fecha      : %s", safe(c.FechaCierre, "-"))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Partidas")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range c.Lineas {
		signo := "+"
		if l.Tipo == models.LineaGasto {
			signo = "-"
		}
		pdf.Cell(130, 6, tr(fmt.Sprintf("%s %s", signo, safe(l.Concepto, l.Tipo))))
		pdf.CellFormat(40, 6, tr(utils.FormatEuro(l.Importe)), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	resumen := []struct {
		label string
		valor float64
	}{
		{"Ingresos", resultados.Ingresos},
		{"Gastos", resultados.Gastos},
		{"Beneficio", resultados.Beneficio},
		{"IVA", resultados.IVA},
		{"Beneficio neto", resultados.BeneficioNeto},
	}
	for _, t := range resumen {
		pdf.Cell(130, 7, tr(t.label))
		pdf.CellFormat(40, 7, tr(utils.FormatEuro(t.valor)), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CIERRE_%d_%s.pdf", c.Ejercicio, safeFilenamePart(c.Titulo))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "sin_nombre"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
