package models

import "time"

// Cliente es un cliente de la agencia (grupo, colegio, asociación...).
type Cliente struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	NIF       string    `json:"nif,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Localidad string    `json:"localidad,omitempty"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientePayload struct {
	Nombre    string `json:"nombre" binding:"required"`
	NIF       string `json:"nif"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
	Localidad string `json:"localidad"`
	Notas     string `json:"notas"`
}
