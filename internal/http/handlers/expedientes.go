package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agencia/internal/domain/models"
	"agencia/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/expedientes?ejercicio=2026&estado=confirmado
// Sin ejercicio explícito se filtra por el ejercicio activo;
// ejercicio=0 lista todos.
func GetExpedientes(c *gin.Context) {
	ejercicioActivo := 0
	if ej := currentEjercicio(); ej != nil {
		ejercicioActivo = ej.Year()
	}
	if raw := strings.TrimSpace(c.Query("ejercicio")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "ejercicio no válido", err)
			return
		}
		ejercicioActivo = v
	}

	repo := repositories.ExpedienteRepository{}
	expedientes, err := repo.List(ejercicioActivo, strings.TrimSpace(c.Query("estado")))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron listar los expedientes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expedientes": expedientes, "ejercicio": ejercicioActivo})
}

// GET /api/expedientes/:id
func GetExpedienteByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ExpedienteRepository{}
	exp, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// POST /api/expedientes
func CreateExpediente(c *gin.Context) {
	var req models.ExpedientePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Estado == "" {
		req.Estado = models.ExpedientePresupuesto
	}
	repo := repositories.ExpedienteRepository{}
	id, err := repo.Create(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el expediente", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/expedientes/:id
func UpdateExpediente(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.ExpedientePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ExpedienteRepository{}
	if err := repo.Update(id, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/expedientes/:id
func DeleteExpediente(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ExpedienteRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
