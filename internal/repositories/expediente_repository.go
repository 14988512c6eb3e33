package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "agencia/internal/config"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
)

type ExpedienteRepository struct {
	DB *sql.DB
}

func (r ExpedienteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const expedienteCols = `
	id, COALESCE(codigo,''), COALESCE(cliente_id,0), COALESCE(cliente_nombre,''),
	COALESCE(destino,''), COALESCE(fecha_salida,''), COALESCE(fecha_regreso,''),
	COALESCE(estado,'presupuesto'), COALESCE(notas,''), presupuesto,
	created_at, updated_at`

func scanExpediente(scan func(dest ...any) error) (models.Expediente, error) {
	var (
		e   models.Expediente
		raw sql.NullString
	)
	err := scan(&e.ID, &e.Codigo, &e.ClienteID, &e.ClienteNombre,
		&e.Destino, &e.FechaSalida, &e.FechaRegreso,
		&e.Estado, &e.Notas, &raw, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return e, err
	}
	if raw.Valid && raw.String != "" {
		var p models.Presupuesto
		// Un presupuesto corrupto no debe romper el listado: se deja a nil.
		if err := json.Unmarshal([]byte(raw.String), &p); err == nil {
			e.Presupuesto = &p
		}
	}
	return e, nil
}

// List filtra por ejercicio (año de la fecha de salida; 0 = todos) y
// estado (vacío = todos).
func (r ExpedienteRepository) List(ejercicio int, estado string) ([]models.Expediente, error) {
	query := `SELECT ` + expedienteCols + ` FROM expedientes WHERE 1=1`
	args := []any{}
	if ejercicio > 0 {
		query += ` AND YEAR(STR_TO_DATE(fecha_salida, '%Y-%m-%d')) = ?`
		args = append(args, ejercicio)
	}
	if estado != "" {
		query += ` AND estado = ?`
		args = append(args, estado)
	}
	query += ` ORDER BY fecha_salida ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Expediente{}
	for rows.Next() {
		e, err := scanExpediente(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r ExpedienteRepository) GetByID(id int64) (models.Expediente, error) {
	row := r.db().QueryRow(`SELECT `+expedienteCols+` FROM expedientes WHERE id = ?`, id)
	e, err := scanExpediente(row.Scan)
	if err == sql.ErrNoRows {
		return e, domain.NotFoundError{Resource: "expediente"}
	}
	return e, err
}

func (r ExpedienteRepository) Create(p models.ExpedientePayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO expedientes (codigo, cliente_id, cliente_nombre, destino, fecha_salida,
		                         fecha_regreso, estado, notas, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		p.Codigo, p.ClienteID, p.ClienteNombre, p.Destino, p.FechaSalida,
		p.FechaRegreso, p.Estado, p.Notas)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ExpedienteRepository) Update(id int64, p models.ExpedientePayload) error {
	res, err := r.db().Exec(`
		UPDATE expedientes
		SET codigo=?, cliente_id=?, cliente_nombre=?, destino=?, fecha_salida=?,
		    fecha_regreso=?, estado=?, notas=?, updated_at=NOW()
		WHERE id=?`,
		p.Codigo, p.ClienteID, p.ClienteNombre, p.Destino, p.FechaSalida,
		p.FechaRegreso, p.Estado, p.Notas, id)
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

// SavePresupuesto guarda la foto del presupuesto (servicios + resumen
// calculado) en la fila del expediente.
func (r ExpedienteRepository) SavePresupuesto(id int64, p models.Presupuesto) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return domain.InternalError{Msg: "no se pudo serializar el presupuesto", Err: err}
	}
	res, err := r.db().Exec(`UPDATE expedientes SET presupuesto=?, updated_at=NOW() WHERE id=?`, string(raw), id)
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

func (r ExpedienteRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM expedientes WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "expediente"}
	}
	return nil
}
