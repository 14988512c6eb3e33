package models

import "time"

// Tipos de línea de cierre.
const (
	LineaIngreso = "ingreso"
	LineaGasto   = "gasto"
)

// LineaCierre es una partida del cierre económico de un expediente.
type LineaCierre struct {
	Concepto string  `json:"concepto"`
	Tipo     string  `json:"tipo"` // ingreso | gasto
	Importe  float64 `json:"importe"`
}

// ResultadoCierre son los totales derivados de las líneas; se recalculan
// al guardar, nunca se editan a mano.
type ResultadoCierre struct {
	Ingresos      float64 `json:"ingresos"`
	Gastos        float64 `json:"gastos"`
	Beneficio     float64 `json:"beneficio"`
	IVA           float64 `json:"iva"`
	BeneficioNeto float64 `json:"beneficioNeto"`
}

// Cierre es la liquidación económica de un expediente terminado.
type Cierre struct {
	ID            int64            `json:"id"`
	ExpedienteID  int64            `json:"expedienteId,omitempty"`
	Titulo        string           `json:"titulo"`
	Ejercicio     int              `json:"ejercicio"`
	FechaCierre   string           `json:"fechaCierre,omitempty"` // YYYY-MM-DD
	Lineas        []LineaCierre    `json:"lineas"`
	Resultados    *ResultadoCierre `json:"resultados,omitempty"`
	Observaciones string           `json:"observaciones,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type CierrePayload struct {
	ExpedienteID  int64         `json:"expedienteId"`
	Titulo        string        `json:"titulo" binding:"required"`
	Ejercicio     int           `json:"ejercicio"`
	FechaCierre   string        `json:"fechaCierre"`
	Lineas        []LineaCierre `json:"lineas"`
	Observaciones string        `json:"observaciones"`
}
