package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestExpedienteRepositoryGetByIDConPresupuesto(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	raw := `{"servicios":[{"categoria":"bus","nombre":"Autocar","coste":1000}],` +
		`"totalPasajeros":40,"gratuidades":2,"precioVentaPax":180}`
	mock.ExpectQuery("FROM expedientes WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "codigo", "cliente_id", "cliente_nombre", "destino", "fecha_salida",
			"fecha_regreso", "estado", "notas", "presupuesto", "created_at", "updated_at",
		}).AddRow(7, "EXP-2026-001", 1, "IES La Rosaleda", "Granada", "2026-05-04",
			"2026-05-06", "confirmado", "", raw, now, now))

	repo := ExpedienteRepository{DB: db}
	exp, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID devolvió error: %v", err)
	}
	if exp.Presupuesto == nil {
		t.Fatalf("el presupuesto no se deserializó")
	}
	if exp.Presupuesto.TotalPasajeros != 40 || len(exp.Presupuesto.Servicios) != 1 {
		t.Fatalf("presupuesto inesperado: %+v", exp.Presupuesto)
	}
	if exp.Presupuesto.Servicios[0].Coste != 1000 {
		t.Fatalf("coste del servicio: got %v", exp.Presupuesto.Servicios[0].Coste)
	}
}

func TestExpedienteRepositoryPresupuestoCorrupto(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM expedientes WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "codigo", "cliente_id", "cliente_nombre", "destino", "fecha_salida",
			"fecha_regreso", "estado", "notas", "presupuesto", "created_at", "updated_at",
		}).AddRow(7, "EXP-2026-001", 1, "", "", "", "", "presupuesto", "", "{no es json", now, now))

	repo := ExpedienteRepository{DB: db}
	exp, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID devolvió error: %v", err)
	}
	if exp.Presupuesto != nil {
		t.Fatalf("un presupuesto corrupto debe quedar a nil, got %+v", exp.Presupuesto)
	}
}

func TestExpedienteRepositoryListPorEjercicioYEstado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM expedientes WHERE 1=1").
		WithArgs(2026, "confirmado").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "codigo", "cliente_id", "cliente_nombre", "destino", "fecha_salida",
			"fecha_regreso", "estado", "notas", "presupuesto", "created_at", "updated_at",
		}))

	repo := ExpedienteRepository{DB: db}
	out, err := repo.List(2026, "confirmado")
	if err != nil {
		t.Fatalf("List devolvió error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("lista vacía esperada, got %v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
