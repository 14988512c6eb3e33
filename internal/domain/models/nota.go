package models

import "time"

// Nota es una entrada del tablón compartido de la oficina.
type Nota struct {
	ID        int64     `json:"id"`
	Autor     string    `json:"autor,omitempty"`
	Texto     string    `json:"texto"`
	Fijada    bool      `json:"fijada"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotaPayload struct {
	Autor  string `json:"autor"`
	Texto  string `json:"texto" binding:"required"`
	Fijada bool   `json:"fijada"`
}
