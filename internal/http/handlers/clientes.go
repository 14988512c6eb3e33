package handlers

import (
	"net/http"
	"strings"

	"agencia/internal/domain/models"
	"agencia/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/clientes?q=texto
func GetClientes(c *gin.Context) {
	repo := repositories.ClienteRepository{}
	clientes, err := repo.List(strings.TrimSpace(c.Query("q")))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron listar los clientes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientes": clientes})
}

// GET /api/clientes/:id
func GetClienteByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ClienteRepository{}
	cliente, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// POST /api/clientes
func CreateCliente(c *gin.Context) {
	var req models.ClientePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ClienteRepository{}
	id, err := repo.Create(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el cliente", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/clientes/:id
func UpdateCliente(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.ClientePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ClienteRepository{}
	if err := repo.Update(id, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/clientes/:id
func DeleteCliente(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ClienteRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
