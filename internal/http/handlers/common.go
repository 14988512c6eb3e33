package handlers

import (
	"net/http"
	"strconv"
	"sync"

	intconfig "agencia/internal/config"
	"agencia/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	cfgMu     sync.RWMutex
	env       intconfig.Env
	ejercicio *intconfig.Ejercicio
)

// Configure inyecta la configuración compartida por los handlers.
func Configure(e intconfig.Env, ej *intconfig.Ejercicio) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	env = e
	ejercicio = ej
}

func currentEnv() intconfig.Env {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return env
}

func currentEjercicio() *intconfig.Ejercicio {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return ejercicio
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "cuerpo vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload no válido", err)
		return false
	}
	return true
}

// ParseIDParam lee :id como entero positivo; responde 400 si no lo es.
func ParseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id no válido", nil)
		return 0, false
	}
	return id, true
}
