package repositories

import (
	"database/sql"

	intconfig "agencia/internal/config"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
)

type ClienteRepository struct {
	DB *sql.DB
}

func (r ClienteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List devuelve los clientes, opcionalmente filtrados por texto sobre
// nombre o localidad.
func (r ClienteRepository) List(q string) ([]models.Cliente, error) {
	query := `
		SELECT id, nombre, COALESCE(nif,''), COALESCE(telefono,''), COALESCE(email,''),
		       COALESCE(direccion,''), COALESCE(localidad,''), COALESCE(notas,''),
		       created_at, updated_at
		FROM clientes`
	args := []any{}
	if q != "" {
		query += ` WHERE nombre LIKE ? OR localidad LIKE ?`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY nombre ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Cliente{}
	for rows.Next() {
		var c models.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.NIF, &c.Telefono, &c.Email,
			&c.Direccion, &c.Localidad, &c.Notas, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ClienteRepository) GetByID(id int64) (models.Cliente, error) {
	var c models.Cliente
	err := r.db().QueryRow(`
		SELECT id, nombre, COALESCE(nif,''), COALESCE(telefono,''), COALESCE(email,''),
		       COALESCE(direccion,''), COALESCE(localidad,''), COALESCE(notas,''),
		       created_at, updated_at
		FROM clientes WHERE id = ?`, id).
		Scan(&c.ID, &c.Nombre, &c.NIF, &c.Telefono, &c.Email,
			&c.Direccion, &c.Localidad, &c.Notas, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return c, domain.NotFoundError{Resource: "cliente"}
	}
	return c, err
}

func (r ClienteRepository) Create(p models.ClientePayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO clientes (nombre, nif, telefono, email, direccion, localidad, notas, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		p.Nombre, p.NIF, p.Telefono, p.Email, p.Direccion, p.Localidad, p.Notas)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ClienteRepository) Update(id int64, p models.ClientePayload) error {
	res, err := r.db().Exec(`
		UPDATE clientes
		SET nombre=?, nif=?, telefono=?, email=?, direccion=?, localidad=?, notas=?, updated_at=NOW()
		WHERE id=?`,
		p.Nombre, p.NIF, p.Telefono, p.Email, p.Direccion, p.Localidad, p.Notas, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

func (r ClienteRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM clientes WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cliente"}
	}
	return nil
}
