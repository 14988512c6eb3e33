package models

import (
	"time"

	"agencia/internal/quotation"
)

// Estados de expediente.
const (
	ExpedientePresupuesto = "presupuesto"
	ExpedienteConfirmado  = "confirmado"
	ExpedienteEnCurso     = "en_curso"
	ExpedienteCerrado     = "cerrado"
	ExpedienteAnulado     = "anulado"
)

// Expediente agrupa cliente, itinerario y presupuesto de un viaje.
type Expediente struct {
	ID            int64        `json:"id"`
	Codigo        string       `json:"codigo"`
	ClienteID     int64        `json:"clienteId,omitempty"`
	ClienteNombre string       `json:"clienteNombre,omitempty"`
	Destino       string       `json:"destino,omitempty"`
	FechaSalida   string       `json:"fechaSalida,omitempty"` // YYYY-MM-DD
	FechaRegreso  string       `json:"fechaRegreso,omitempty"`
	Estado        string       `json:"estado"`
	Notas         string       `json:"notas,omitempty"`
	Presupuesto   *Presupuesto `json:"presupuesto,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Presupuesto guarda las entradas crudas del presupuesto junto al resumen
// calculado, de forma que otra sesión reconstruya la edición tal cual.
type Presupuesto struct {
	Servicios      []quotation.Servicio `json:"servicios"`
	TotalPasajeros int                  `json:"totalPasajeros"`
	Gratuidades    int                  `json:"gratuidades"`
	DiasGuia       int                  `json:"diasGuia"`
	Bonificacion   float64              `json:"bonificacion"`
	PrecioVentaPax float64              `json:"precioVentaPax"`
	Resultados     *quotation.Resumen   `json:"resultados,omitempty"`
}

// Parametros proyecta las entradas escalares hacia el motor de cálculo.
func (p Presupuesto) Parametros() quotation.Parametros {
	return quotation.Parametros{
		TotalPasajeros: p.TotalPasajeros,
		Gratuidades:    p.Gratuidades,
		DiasGuia:       p.DiasGuia,
		Bonificacion:   p.Bonificacion,
		PrecioVentaPax: p.PrecioVentaPax,
	}
}

type ExpedientePayload struct {
	Codigo        string `json:"codigo"`
	ClienteID     int64  `json:"clienteId"`
	ClienteNombre string `json:"clienteNombre"`
	Destino       string `json:"destino"`
	FechaSalida   string `json:"fechaSalida"`
	FechaRegreso  string `json:"fechaRegreso"`
	Estado        string `json:"estado"`
	Notas         string `json:"notas"`
}
