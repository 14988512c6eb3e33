package services

import (
	"testing"
	"time"

	"agencia/internal/domain"
	"agencia/internal/domain/models"
	"agencia/internal/quotation"
	"agencia/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func expedienteRows(id int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "codigo", "cliente_id", "cliente_nombre", "destino", "fecha_salida",
		"fecha_regreso", "estado", "notas", "presupuesto", "created_at", "updated_at",
	}).AddRow(id, "EXP-2026-001", 1, "IES La Rosaleda", "Granada", "2026-05-04",
		"2026-05-06", "presupuesto", "", nil, now, now)
}

func TestPresupuestoServiceGuardar(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM expedientes").
		WithArgs(int64(7)).
		WillReturnRows(expedienteRows(7))
	mock.ExpectExec("UPDATE expedientes SET presupuesto").
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := PresupuestoService{Repo: repositories.ExpedienteRepository{DB: db}}
	res, err := svc.Guardar(7, models.Presupuesto{
		Servicios: []quotation.Servicio{
			{Categoria: quotation.CategoriaBus, Nombre: "Autocar 55", Coste: 1000},
		},
		TotalPasajeros: 40,
		PrecioVentaPax: 60,
	})
	if err != nil {
		t.Fatalf("Guardar devolvió error: %v", err)
	}
	if res.CosteRealPax != 25 {
		t.Fatalf("coste real: got %v want 25", res.CosteRealPax)
	}
	if res.PrecioVentaPax != 60 {
		t.Fatalf("precio venta: got %v want 60", res.PrecioVentaPax)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPresupuestoServiceGuardarExpedienteInexistente(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM expedientes").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := PresupuestoService{Repo: repositories.ExpedienteRepository{DB: db}}
	_, err = svc.Guardar(99, models.Presupuesto{})
	if err == nil || !domain.IsNotFound(err) {
		t.Fatalf("se esperaba not found, got %v", err)
	}
}

func TestPresupuestoServiceGuardarIDInvalido(t *testing.T) {
	svc := PresupuestoService{}
	_, err := svc.Guardar(0, models.Presupuesto{})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("se esperaba error de validación, got %v", err)
	}
}
