package handlers

import (
	"net/http"

	"agencia/internal/domain/models"
	"agencia/internal/http/middleware"
	"agencia/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/presupuesto/calcular
// Recalcula sin tocar la base de datos: el editor lo invoca en cada
// cambio de servicio o parámetro y pinta el resultado tal cual.
func CalcularPresupuesto(c *gin.Context) {
	var req models.Presupuesto
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.PresupuestoService{RequestID: middleware.GetRequestID(c)}
	res := svc.Calcular(req)
	c.JSON(http.StatusOK, res.Redondeado())
}

// PUT /api/expedientes/:id/presupuesto
// Guarda las entradas crudas junto al resumen calculado en el expediente.
func GuardarPresupuesto(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.Presupuesto
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.PresupuestoService{RequestID: middleware.GetRequestID(c)}
	res, err := svc.Guardar(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "resultado": res.Redondeado()})
}

// GET /api/expedientes/:id/presupuesto/pdf
func GetPresupuestoPDF(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerarPresupuestoPDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
