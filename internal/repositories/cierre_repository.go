package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "agencia/internal/config"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
)

type CierreRepository struct {
	DB *sql.DB
}

func (r CierreRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const cierreCols = `
	id, COALESCE(expediente_id,0), titulo, COALESCE(ejercicio,0), COALESCE(fecha_cierre,''),
	lineas, resultados, COALESCE(observaciones,''), created_at, updated_at`

func scanCierre(scan func(dest ...any) error) (models.Cierre, error) {
	var (
		c                models.Cierre
		lineas, resultados sql.NullString
	)
	err := scan(&c.ID, &c.ExpedienteID, &c.Titulo, &c.Ejercicio, &c.FechaCierre,
		&lineas, &resultados, &c.Observaciones, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	c.Lineas = []models.LineaCierre{}
	if lineas.Valid && lineas.String != "" {
		_ = json.Unmarshal([]byte(lineas.String), &c.Lineas)
	}
	if resultados.Valid && resultados.String != "" {
		var res models.ResultadoCierre
		if err := json.Unmarshal([]byte(resultados.String), &res); err == nil {
			c.Resultados = &res
		}
	}
	return c, nil
}

// List filtra por ejercicio (0 = todos).
func (r CierreRepository) List(ejercicio int) ([]models.Cierre, error) {
	query := `SELECT ` + cierreCols + ` FROM cierres`
	args := []any{}
	if ejercicio > 0 {
		query += ` WHERE ejercicio = ?`
		args = append(args, ejercicio)
	}
	query += ` ORDER BY fecha_cierre DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Cierre{}
	for rows.Next() {
		c, err := scanCierre(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CierreRepository) GetByID(id int64) (models.Cierre, error) {
	row := r.db().QueryRow(`SELECT `+cierreCols+` FROM cierres WHERE id = ?`, id)
	c, err := scanCierre(row.Scan)
	if err == sql.ErrNoRows {
		return c, domain.NotFoundError{Resource: "cierre"}
	}
	return c, err
}

func (r CierreRepository) Create(c models.Cierre) (int64, error) {
	lineas, err := json.Marshal(c.Lineas)
	if err != nil {
		return 0, domain.InternalError{Msg: "no se pudieron serializar las líneas", Err: err}
	}
	var resultados any
	if c.Resultados != nil {
		raw, err := json.Marshal(c.Resultados)
		if err != nil {
			return 0, domain.InternalError{Msg: "no se pudieron serializar los resultados", Err: err}
		}
		resultados = string(raw)
	}
	res, err := r.db().Exec(`
		INSERT INTO cierres (expediente_id, titulo, ejercicio, fecha_cierre, lineas, resultados, observaciones, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		c.ExpedienteID, c.Titulo, c.Ejercicio, c.FechaCierre, string(lineas), resultados, c.Observaciones)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CierreRepository) Update(c models.Cierre) error {
	lineas, err := json.Marshal(c.Lineas)
	if err != nil {
		return domain.InternalError{Msg: "no se pudieron serializar las líneas", Err: err}
	}
	var resultados any
	if c.Resultados != nil {
		raw, err := json.Marshal(c.Resultados)
		if err != nil {
			return domain.InternalError{Msg: "no se pudieron serializar los resultados", Err: err}
		}
		resultados = string(raw)
	}
	res, err := r.db().Exec(`
		UPDATE cierres
		SET expediente_id=?, titulo=?, ejercicio=?, fecha_cierre=?, lineas=?, resultados=?, observaciones=?, updated_at=NOW()
		WHERE id=?`,
		c.ExpedienteID, c.Titulo, c.Ejercicio, c.FechaCierre, string(lineas), resultados, c.Observaciones, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(c.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r CierreRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM cierres WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cierre"}
	}
	return nil
}
