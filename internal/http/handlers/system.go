package handlers

import (
	"net/http"

	intconfig "agencia/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "backoffice de agencia en marcha"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "base de datos sin conectar"})
		return
	}
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fallo de conexión: " + err.Error()})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM usuarios").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fallo al consultar: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexión OK", "usuarios": count})
}
