package repositories

import (
	"testing"
	"time"

	"agencia/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func clienteRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "nombre", "nif", "telefono", "email",
		"direccion", "localidad", "notas", "created_at", "updated_at",
	}).
		AddRow(1, "IES La Rosaleda", "S2900000A", "952000000", "viajes@rosaleda.es",
			"Av. Luis Buñuel 8", "Málaga", "", now, now).
		AddRow(2, "Colegio San José", "", "", "", "", "Sevilla", "grupo habitual", now, now)
}

func TestClienteRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM clientes").WillReturnRows(clienteRows())

	repo := ClienteRepository{DB: db}
	clientes, err := repo.List("")
	if err != nil {
		t.Fatalf("List devolvió error: %v", err)
	}
	if len(clientes) != 2 {
		t.Fatalf("clientes: got %d want 2", len(clientes))
	}
	if clientes[0].Nombre != "IES La Rosaleda" || clientes[0].Localidad != "Málaga" {
		t.Fatalf("primer cliente inesperado: %+v", clientes[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClienteRepositoryListConFiltro(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM clientes WHERE nombre LIKE").
		WithArgs("%rosaleda%", "%rosaleda%").
		WillReturnRows(clienteRows())

	repo := ClienteRepository{DB: db}
	if _, err := repo.List("rosaleda"); err != nil {
		t.Fatalf("List devolvió error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClienteRepositoryGetByIDNoEncontrado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM clientes WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := ClienteRepository{DB: db}
	_, err = repo.GetByID(42)
	if err == nil || !domain.IsNotFound(err) {
		t.Fatalf("se esperaba not found, got %v", err)
	}
}

func TestClienteRepositoryDeleteNoEncontrado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM clientes").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ClienteRepository{DB: db}
	if err := repo.Delete(42); err == nil || !domain.IsNotFound(err) {
		t.Fatalf("se esperaba not found, got %v", err)
	}
}
