package models

import "time"

// Proveedor presta servicios a los expedientes. Tipo es texto libre
// ("Hotel", "Guía local"...) que se compara con las categorías de
// servicio normalizando acentos y mayúsculas.
type Proveedor struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo,omitempty"`
	Localidad string    `json:"localidad,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	Contacto  string    `json:"contacto,omitempty"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProveedorPayload struct {
	Nombre    string `json:"nombre" binding:"required"`
	Tipo      string `json:"tipo"`
	Localidad string `json:"localidad"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Contacto  string `json:"contacto"`
	Notas     string `json:"notas"`
}
