package models

import "time"

// Estados del pipeline de prospectos.
const (
	ProspectoNuevo         = "nuevo"
	ProspectoContactado    = "contactado"
	ProspectoPresupuestado = "presupuestado"
	ProspectoGanado        = "ganado"
	ProspectoPerdido       = "perdido"
)

// Prospecto es un contacto comercial todavía sin expediente.
type Prospecto struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	Contacto        string    `json:"contacto,omitempty"`
	Telefono        string    `json:"telefono,omitempty"`
	Email           string    `json:"email,omitempty"`
	Origen          string    `json:"origen,omitempty"`
	Estado          string    `json:"estado"`
	ProximoContacto string    `json:"proximoContacto,omitempty"` // YYYY-MM-DD
	Notas           string    `json:"notas,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProspectoPayload struct {
	Nombre          string `json:"nombre" binding:"required"`
	Contacto        string `json:"contacto"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Origen          string `json:"origen"`
	Estado          string `json:"estado"`
	ProximoContacto string `json:"proximoContacto"`
	Notas           string `json:"notas"`
}
