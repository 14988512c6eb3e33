package handlers

import (
	"net/http"
	"strings"

	"agencia/internal/domain/models"
	"agencia/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/crm/prospectos?estado=contactado
func GetProspectos(c *gin.Context) {
	repo := repositories.ProspectoRepository{}
	prospectos, err := repo.List(strings.TrimSpace(c.Query("estado")))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron listar los prospectos", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prospectos": prospectos})
}

// GET /api/crm/agenda?desde=2026-09-01&hasta=2026-09-30
// Alimenta la vista de calendario con los próximos contactos pendientes.
func GetAgenda(c *gin.Context) {
	repo := repositories.ProspectoRepository{}
	agenda, err := repo.Agenda(strings.TrimSpace(c.Query("desde")), strings.TrimSpace(c.Query("hasta")))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo cargar la agenda", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agenda": agenda})
}

// GET /api/crm/prospectos/:id
func GetProspectoByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ProspectoRepository{}
	p, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/crm/prospectos
func CreateProspecto(c *gin.Context) {
	var req models.ProspectoPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ProspectoRepository{}
	id, err := repo.Create(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el prospecto", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/crm/prospectos/:id
func UpdateProspecto(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.ProspectoPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ProspectoRepository{}
	if err := repo.Update(id, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/crm/prospectos/:id
func DeleteProspecto(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ProspectoRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
