package handlers

import (
	"net/http"
	"time"

	"agencia/internal/domain"
	"agencia/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// POST /api/auth/login
// El acceso es por lista cerrada de operadores: no existe registro
// público, las cuentas se dan de alta desde /api/usuarios.
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UsuarioRepository{}
	user, err := repo.GetByLogin(req.Usuario)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
		} else {
			RespondError(c, http.StatusInternalServerError, "no se pudo consultar el usuario", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
		return
	}

	e := currentEnv()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"rol":     user.Rol,
		"exp":     time.Now().Add(e.JWTTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(e.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo firmar el token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user.ToPublic(),
	})
}
