package handlers

import (
	"net/http"
	"strings"

	"agencia/internal/domain/models"
	"agencia/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/proveedores?tipo=guia_local
// El tipo casa sin distinguir mayúsculas ni acentos: "Guía local"
// encuentra proveedores dados de alta como "guia local".
func GetProveedores(c *gin.Context) {
	repo := repositories.ProveedorRepository{}
	proveedores, err := repo.List(strings.TrimSpace(c.Query("tipo")))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron listar los proveedores", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proveedores": proveedores})
}

// GET /api/proveedores/:id
func GetProveedorByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ProveedorRepository{}
	p, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/proveedores
func CreateProveedor(c *gin.Context) {
	var req models.ProveedorPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ProveedorRepository{}
	id, err := repo.Create(req)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo crear el proveedor", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/proveedores/:id
func UpdateProveedor(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req models.ProveedorPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ProveedorRepository{}
	if err := repo.Update(id, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/proveedores/:id
func DeleteProveedor(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	repo := repositories.ProveedorRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
