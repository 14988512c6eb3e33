package services

import (
	"fmt"
	"math"

	intconfig "agencia/internal/config"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
	"agencia/internal/quotation"
	"agencia/internal/repositories"
	"agencia/internal/utils"
)

// CierreService liquida expedientes: suma partidas, aplica IVA sobre el
// beneficio positivo y guarda. Es la variante no reactiva del mismo tipo
// de aritmética que el presupuesto.
type CierreService struct {
	Repo      repositories.CierreRepository
	Ejercicio *intconfig.Ejercicio
	RequestID string
}

// CalcularCierre totaliza las líneas. Importes negativos o no numéricos
// cuentan como cero; el signo lo pone el tipo de línea.
func CalcularCierre(lineas []models.LineaCierre) models.ResultadoCierre {
	var ingresos, gastos float64
	for _, l := range lineas {
		importe := l.Importe
		if importe < 0 || math.IsNaN(importe) || math.IsInf(importe, 0) {
			importe = 0
		}
		switch l.Tipo {
		case models.LineaIngreso:
			ingresos += importe
		case models.LineaGasto:
			gastos += importe
		}
	}

	beneficio := ingresos - gastos
	iva := 0.0
	if beneficio > 0 {
		iva = beneficio * quotation.TipoIVA
	}

	return models.ResultadoCierre{
		Ingresos:      utils.Round2(ingresos),
		Gastos:        utils.Round2(gastos),
		Beneficio:     utils.Round2(beneficio),
		IVA:           utils.Round2(iva),
		BeneficioNeto: utils.Round2(beneficio - iva),
	}
}

// Crear calcula los totales y da de alta el cierre. Si no trae ejercicio
// se toma de la fecha de cierre, y en su defecto del ejercicio activo.
func (s CierreService) Crear(p models.CierrePayload) (models.Cierre, error) {
	c, err := s.preparar(p)
	if err != nil {
		return c, err
	}

	id, err := s.Repo.Create(c)
	if err != nil {
		return c, err
	}
	c.ID = id

	utils.LogEvent(s.RequestID, "cierre", "crear",
		fmt.Sprintf("cierre_id=%d ejercicio=%d lineas=%d", id, c.Ejercicio, len(c.Lineas)))
	return c, nil
}

// Actualizar recalcula los totales y guarda sobre un cierre existente.
func (s CierreService) Actualizar(id int64, p models.CierrePayload) (models.Cierre, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return models.Cierre{}, err
	}

	c, err := s.preparar(p)
	if err != nil {
		return c, err
	}
	c.ID = id

	if err := s.Repo.Update(c); err != nil {
		return c, err
	}

	utils.LogEvent(s.RequestID, "cierre", "actualizar",
		fmt.Sprintf("cierre_id=%d ejercicio=%d lineas=%d", id, c.Ejercicio, len(c.Lineas)))
	return c, nil
}

func (s CierreService) preparar(p models.CierrePayload) (models.Cierre, error) {
	if p.Titulo == "" {
		return models.Cierre{}, domain.ValidationError{Field: "titulo", Msg: "obligatorio"}
	}

	ejercicio := p.Ejercicio
	if ejercicio <= 0 && p.FechaCierre != "" {
		ejercicio = utils.EjercicioDe(p.FechaCierre)
	}
	if ejercicio <= 0 && s.Ejercicio != nil {
		ejercicio = s.Ejercicio.Year()
	}

	lineas := p.Lineas
	if lineas == nil {
		lineas = []models.LineaCierre{}
	}
	resultados := CalcularCierre(lineas)

	return models.Cierre{
		ExpedienteID:  p.ExpedienteID,
		Titulo:        p.Titulo,
		Ejercicio:     ejercicio,
		FechaCierre:   p.FechaCierre,
		Lineas:        lineas,
		Resultados:    &resultados,
		Observaciones: p.Observaciones,
	}, nil
}
