package handlers

import (
	"net/http"

	"agencia/internal/domain/models"
	"agencia/internal/http/middleware"
	"agencia/internal/repositories"
	"agencia/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type usuarioPayload struct {
	Nombre   string `json:"nombre" binding:"required"`
	Usuario  string `json:"usuario" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Rol      string `json:"rol"`
}

// GET /api/usuarios
func GetUsuarios(c *gin.Context) {
	repo := repositories.UsuarioRepository{}
	usuarios, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudieron listar los usuarios", err)
		return
	}
	out := make([]models.PublicUsuario, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, usuarios[i].ToPublic())
	}
	c.JSON(http.StatusOK, gin.H{"usuarios": out})
}

// POST /api/usuarios  (solo admin: alta en la lista cerrada)
func CreateUsuario(c *gin.Context) {
	var req usuarioPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo cifrar la contraseña", err)
		return
	}

	rol := req.Rol
	if rol == "" {
		rol = "operador"
	}

	repo := repositories.UsuarioRepository{}
	id, err := repo.Create(models.Usuario{
		Nombre:       req.Nombre,
		Usuario:      req.Usuario,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "usuarios", "alta", req.Usuario)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/usuarios/:id/activo
func SetUsuarioActivo(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Activo bool `json:"activo"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UsuarioRepository{}
	if err := repo.SetActivo(id, req.Activo); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
