package models

import "time"

// Usuario es un operador de la agencia. El acceso es por lista cerrada:
// no hay registro público, las altas las hace un admin.
type Usuario struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Usuario      string    `json:"usuario"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"` // nunca viaja al frontend
	Rol          string    `json:"rol"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PublicUsuario struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
	Email   string `json:"email,omitempty"`
	Rol     string `json:"rol"`
	Activo  bool   `json:"activo"`
}

func (u *Usuario) ToPublic() PublicUsuario {
	return PublicUsuario{
		ID:      u.ID,
		Nombre:  u.Nombre,
		Usuario: u.Usuario,
		Email:   u.Email,
		Rol:     u.Rol,
		Activo:  u.Activo,
	}
}
