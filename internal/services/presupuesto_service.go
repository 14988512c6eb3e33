package services

import (
	"fmt"

	"agencia/internal/domain"
	"agencia/internal/domain/models"
	"agencia/internal/quotation"
	"agencia/internal/repositories"
	"agencia/internal/utils"
)

// PresupuestoService orquesta el motor de cálculo y el guardado del
// presupuesto dentro de su expediente. El cálculo en sí es puro; aquí
// solo se añade persistencia y log.
type PresupuestoService struct {
	Repo      repositories.ExpedienteRepository
	RequestID string
}

// Calcular recalcula el presupuesto completo a partir de las entradas
// crudas. Se invoca en cada cambio del editor; no toca la base de datos.
func (s PresupuestoService) Calcular(p models.Presupuesto) quotation.Resultado {
	return quotation.Calcular(p.Servicios, p.Parametros())
}

// Guardar recalcula, incrusta el resumen en el presupuesto y lo guarda
// como snapshot en el expediente. Devuelve el resultado completo para
// que la vista no tenga que recalcular.
func (s PresupuestoService) Guardar(expedienteID int64, p models.Presupuesto) (quotation.Resultado, error) {
	if expedienteID <= 0 {
		return quotation.Resultado{}, domain.ValidationError{Field: "expedienteId", Msg: "debe ser positivo"}
	}
	if _, err := s.Repo.GetByID(expedienteID); err != nil {
		return quotation.Resultado{}, err
	}

	res := quotation.Calcular(p.Servicios, p.Parametros())
	resumen := res.Resumen()
	p.Resultados = &resumen

	if err := s.Repo.SavePresupuesto(expedienteID, p); err != nil {
		return quotation.Resultado{}, err
	}

	utils.LogEvent(s.RequestID, "presupuesto", "guardar",
		fmt.Sprintf("expediente_id=%d servicios=%d pax=%d", expedienteID, len(p.Servicios), res.TotalPasajeros))
	return res, nil
}
