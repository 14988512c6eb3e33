package repositories

import (
	"database/sql"

	intconfig "agencia/internal/config"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
	"agencia/internal/utils"
)

type ProveedorRepository struct {
	DB *sql.DB
}

func (r ProveedorRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List devuelve los proveedores. El filtro por tipo compara normalizando
// acentos y mayúsculas ("Guía local" casa con "guia_local"), así que se
// aplica en memoria y no en SQL.
func (r ProveedorRepository) List(tipo string) ([]models.Proveedor, error) {
	rows, err := r.db().Query(`
		SELECT id, nombre, COALESCE(tipo,''), COALESCE(localidad,''), COALESCE(telefono,''),
		       COALESCE(email,''), COALESCE(contacto,''), COALESCE(notas,''),
		       created_at, updated_at
		FROM proveedores
		ORDER BY nombre ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Proveedor{}
	for rows.Next() {
		var p models.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Localidad, &p.Telefono,
			&p.Email, &p.Contacto, &p.Notas, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return out, err
		}
		if tipo != "" && !utils.MismaCategoria(p.Tipo, tipo) {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ProveedorRepository) GetByID(id int64) (models.Proveedor, error) {
	var p models.Proveedor
	err := r.db().QueryRow(`
		SELECT id, nombre, COALESCE(tipo,''), COALESCE(localidad,''), COALESCE(telefono,''),
		       COALESCE(email,''), COALESCE(contacto,''), COALESCE(notas,''),
		       created_at, updated_at
		FROM proveedores WHERE id = ?`, id).
		Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Localidad, &p.Telefono,
			&p.Email, &p.Contacto, &p.Notas, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "proveedor"}
	}
	return p, err
}

func (r ProveedorRepository) Create(p models.ProveedorPayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO proveedores (nombre, tipo, localidad, telefono, email, contacto, notas, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		p.Nombre, p.Tipo, p.Localidad, p.Telefono, p.Email, p.Contacto, p.Notas)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ProveedorRepository) Update(id int64, p models.ProveedorPayload) error {
	res, err := r.db().Exec(`
		UPDATE proveedores
		SET nombre=?, tipo=?, localidad=?, telefono=?, email=?, contacto=?, notas=?, updated_at=NOW()
		WHERE id=?`,
		p.Nombre, p.Tipo, p.Localidad, p.Telefono, p.Email, p.Contacto, p.Notas, id)
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

func (r ProveedorRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM proveedores WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "proveedor"}
	}
	return nil
}
