package repositories

import (
	"database/sql"

	intconfig "agencia/internal/config"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
)

type ProspectoRepository struct {
	DB *sql.DB
}

func (r ProspectoRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const prospectoCols = `
	id, nombre, COALESCE(contacto,''), COALESCE(telefono,''), COALESCE(email,''),
	COALESCE(origen,''), COALESCE(estado,'nuevo'), COALESCE(proximo_contacto,''),
	COALESCE(notas,''), created_at, updated_at`

func scanProspecto(scan func(dest ...any) error) (models.Prospecto, error) {
	var p models.Prospecto
	err := scan(&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email,
		&p.Origen, &p.Estado, &p.ProximoContacto, &p.Notas, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r ProspectoRepository) List(estado string) ([]models.Prospecto, error) {
	query := `SELECT ` + prospectoCols + ` FROM prospectos`
	args := []any{}
	if estado != "" {
		query += ` WHERE estado = ?`
		args = append(args, estado)
	}
	query += ` ORDER BY proximo_contacto ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Prospecto{}
	for rows.Next() {
		p, err := scanProspecto(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Agenda lista los prospectos con próximo contacto dentro del rango,
// ordenados por fecha, para la vista de calendario.
func (r ProspectoRepository) Agenda(desde, hasta string) ([]models.Prospecto, error) {
	query := `SELECT ` + prospectoCols + ` FROM prospectos
		WHERE COALESCE(proximo_contacto,'') <> ''
		  AND estado NOT IN (?, ?)`
	args := []any{models.ProspectoGanado, models.ProspectoPerdido}
	if desde != "" {
		query += ` AND proximo_contacto >= ?`
		args = append(args, desde)
	}
	if hasta != "" {
		query += ` AND proximo_contacto <= ?`
		args = append(args, hasta)
	}
	query += ` ORDER BY proximo_contacto ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Prospecto{}
	for rows.Next() {
		p, err := scanProspecto(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ProspectoRepository) GetByID(id int64) (models.Prospecto, error) {
	row := r.db().QueryRow(`SELECT `+prospectoCols+` FROM prospectos WHERE id = ?`, id)
	p, err := scanProspecto(row.Scan)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "prospecto"}
	}
	return p, err
}

func (r ProspectoRepository) Create(p models.ProspectoPayload) (int64, error) {
	estado := p.Estado
	if estado == "" {
		estado = models.ProspectoNuevo
	}
	res, err := r.db().Exec(`
		INSERT INTO prospectos (nombre, contacto, telefono, email, origen, estado, proximo_contacto, notas, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		p.Nombre, p.Contacto, p.Telefono, p.Email, p.Origen, estado, p.ProximoContacto, p.Notas)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ProspectoRepository) Update(id int64, p models.ProspectoPayload) error {
	res, err := r.db().Exec(`
		UPDATE prospectos
		SET nombre=?, contacto=?, telefono=?, email=?, origen=?, estado=?, proximo_contacto=?, notas=?, updated_at=NOW()
		WHERE id=?`,
		p.Nombre, p.Contacto, p.Telefono, p.Email, p.Origen, p.Estado, p.ProximoContacto, p.Notas, id)
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

func (r ProspectoRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM prospectos WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "prospecto"}
	}
	return nil
}
