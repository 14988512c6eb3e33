package handlers

import (
	"net/http"

	"agencia/internal/domain/models"
	"agencia/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/notas
func GetNotas(c *gin.Context) {
	repo := repositories.NotaRepository{}
	notas, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo cargar el tablón", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notas": notas})
}

// POST /api/notas
func CreateNota(c *gin.Context) {
	var req models.NotaPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.NotaRepository{}
	id, err := repo.Create(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear la nota", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/notas/:id
func UpdateNota(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.NotaPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.NotaRepository{}
	if err := repo.Update(id, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/notas/:id
func DeleteNota(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.NotaRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
