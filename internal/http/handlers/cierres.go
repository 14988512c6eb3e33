package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"agencia/internal/domain/models"
	"agencia/internal/http/middleware"
	"agencia/internal/repositories"
	"agencia/internal/services"

	"github.com/gin-gonic/gin"
)

func cierreService(c *gin.Context) services.CierreService {
	return services.CierreService{
		Ejercicio: currentEjercicio(),
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/cierres?ejercicio=2026   (sin parámetro: ejercicio activo; 0 = todos)
func GetCierres(c *gin.Context) {
	ejercicio := 0
	if ej := currentEjercicio(); ej != nil {
		ejercicio = ej.Year()
	}
	if raw := strings.TrimSpace(c.Query("ejercicio")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "ejercicio no válido", err)
			return
		}
		ejercicio = v
	}

	repo := repositories.CierreRepository{}
	cierres, err := repo.List(ejercicio)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron listar los cierres", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cierres": cierres, "ejercicio": ejercicio})
}

// GET /api/cierres/:id
func GetCierreByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.CierreRepository{}
	cierre, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cierre)
}

// POST /api/cierres
func CreateCierre(c *gin.Context) {
	var req models.CierrePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	cierre, err := cierreService(c).Crear(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cierre)
}

// PUT /api/cierres/:id
func UpdateCierre(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.CierrePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	cierre, err := cierreService(c).Actualizar(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cierre)
}

// DELETE /api/cierres/:id
func DeleteCierre(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.CierreRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/cierres/:id/pdf
func GetCierrePDF(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerarCierrePDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
