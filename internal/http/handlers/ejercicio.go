package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/ejercicio
func GetEjercicio(c *gin.Context) {
	ej := currentEjercicio()
	if ej == nil {
		RespondError(c, http.StatusServiceUnavailable, "ejercicio sin configurar", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ejercicio": ej.Year()})
}

// PUT /api/ejercicio
// Cambia el ejercicio activo; los listados de expedientes y cierres
// pasan a filtrar por el nuevo año.
func SetEjercicio(c *gin.Context) {
	ej := currentEjercicio()
	if ej == nil {
		RespondError(c, http.StatusServiceUnavailable, "ejercicio sin configurar", nil)
		return
	}
	var req struct {
		Ejercicio int `json:"ejercicio" binding:"required"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Ejercicio < 2000 || req.Ejercicio > 2100 {
		RespondError(c, http.StatusBadRequest, "ejercicio fuera de rango", nil)
		return
	}
	ej.Set(req.Ejercicio)
	c.JSON(http.StatusOK, gin.H{"ejercicio": ej.Year()})
}
