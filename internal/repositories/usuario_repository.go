package repositories

import (
	"database/sql"

	intconfig "agencia/internal/config"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
)

type UsuarioRepository struct {
	DB *sql.DB
}

func (r UsuarioRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin busca por usuario o email, solo cuentas activas.
func (r UsuarioRepository) GetByLogin(login string) (models.Usuario, error) {
	var u models.Usuario
	err := r.db().QueryRow(`
		SELECT id, nombre, usuario, COALESCE(email,''), password_hash, rol, activo, created_at, updated_at
		FROM usuarios
		WHERE (usuario = ? OR email = ?) AND activo = 1`, login, login).
		Scan(&u.ID, &u.Nombre, &u.Usuario, &u.Email, &u.PasswordHash, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "usuario"}
	}
	return u, err
}

func (r UsuarioRepository) List() ([]models.Usuario, error) {
	rows, err := r.db().Query(`
		SELECT id, nombre, usuario, COALESCE(email,''), password_hash, rol, activo, created_at, updated_at
		FROM usuarios ORDER BY nombre ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Usuario{}
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Usuario, &u.Email, &u.PasswordHash,
			&u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return out, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UsuarioRepository) Create(u models.Usuario) (int64, error) {
	var exists int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM usuarios WHERE usuario = ? OR (email <> '' AND email = ?)`,
		u.Usuario, u.Email).Scan(&exists); err != nil {
		return 0, err
	}
	if exists > 0 {
		return 0, domain.ConflictError{Resource: "usuario", Msg: "usuario o email ya dado de alta"}
	}

	res, err := r.db().Exec(`
		INSERT INTO usuarios (nombre, usuario, email, password_hash, rol, activo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		u.Nombre, u.Usuario, u.Email, u.PasswordHash, u.Rol, u.Activo)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UsuarioRepository) SetActivo(id int64, activo bool) error {
	res, err := r.db().Exec(`UPDATE usuarios SET activo=?, updated_at=NOW() WHERE id=?`, activo, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int64
		if err := r.db().QueryRow(`SELECT id FROM usuarios WHERE id=?`, id).Scan(&exists); err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "usuario"}
		}
	}
	return nil
}
