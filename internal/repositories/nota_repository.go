package repositories

import (
	"database/sql"

	intconfig "agencia/internal/config"
	intdb "agencia/internal/db"
	"agencia/internal/domain"
	"agencia/internal/domain/models"
)

type NotaRepository struct {
	DB *sql.DB
}

func (r NotaRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List devuelve el tablón, fijadas primero. Si la tabla aún no existe
// (instalación a medias) devuelve vacío en vez de error.
func (r NotaRepository) List() ([]models.Nota, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "notas") {
		return []models.Nota{}, nil
	}

	rows, err := db.Query(`
		SELECT id, COALESCE(autor,''), texto, COALESCE(fijada,0), created_at, updated_at
		FROM notas
		ORDER BY fijada DESC, updated_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Nota{}
	for rows.Next() {
		var n models.Nota
		if err := rows.Scan(&n.ID, &n.Autor, &n.Texto, &n.Fijada, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return out, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r NotaRepository) Create(p models.NotaPayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO notas (autor, texto, fijada, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())`,
		intdb.NullIfEmpty(p.Autor), p.Texto, p.Fijada)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r NotaRepository) Update(id int64, p models.NotaPayload) error {
	res, err := r.db().Exec(`
		UPDATE notas SET autor=?, texto=?, fijada=?, updated_at=NOW() WHERE id=?`,
		intdb.NullIfEmpty(p.Autor), p.Texto, p.Fijada, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int64
		if err := r.db().QueryRow(`SELECT id FROM notas WHERE id=?`, id).Scan(&exists); err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "nota"}
		}
	}
	return nil
}

func (r NotaRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM notas WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "nota"}
	}
	return nil
}
