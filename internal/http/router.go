package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "agencia/internal/config"
	h "agencia/internal/http/handlers"
	"agencia/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, ejercicio *intconfig.Ejercicio) *gin.Engine {
	h.Configure(env, ejercicio)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORS,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret))
	admin := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.POST("/auth/login", h.Login)

		// Usuarios (lista cerrada de operadores, solo admin)
		usuarios := api.Group("/usuarios", auth, admin)
		usuarios.GET("", h.GetUsuarios)
		usuarios.POST("", h.CreateUsuario)
		usuarios.PUT("/:id/activo", h.SetUsuarioActivo)

		// Ejercicio fiscal activo
		api.GET("/ejercicio", auth, h.GetEjercicio)
		api.PUT("/ejercicio", auth, admin, h.SetEjercicio)

		// Clientes
		clientes := api.Group("/clientes", auth)
		clientes.GET("", h.GetClientes)
		clientes.GET("/:id", h.GetClienteByID)
		clientes.POST("", h.CreateCliente)
		clientes.PUT("/:id", h.UpdateCliente)
		clientes.DELETE("/:id", h.DeleteCliente)

		// Proveedores
		proveedores := api.Group("/proveedores", auth)
		proveedores.GET("", h.GetProveedores)
		proveedores.GET("/:id", h.GetProveedorByID)
		proveedores.POST("", h.CreateProveedor)
		proveedores.PUT("/:id", h.UpdateProveedor)
		proveedores.DELETE("/:id", h.DeleteProveedor)

		// Expedientes y presupuesto
		expedientes := api.Group("/expedientes", auth)
		expedientes.GET("", h.GetExpedientes)
		expedientes.GET("/:id", h.GetExpedienteByID)
		expedientes.POST("", h.CreateExpediente)
		expedientes.PUT("/:id", h.UpdateExpediente)
		expedientes.DELETE("/:id", h.DeleteExpediente)
		expedientes.PUT("/:id/presupuesto", h.GuardarPresupuesto)
		expedientes.GET("/:id/presupuesto/pdf", h.GetPresupuestoPDF)

		// Cálculo sin persistencia (el editor lo llama en cada cambio)
		api.POST("/presupuesto/calcular", auth, h.CalcularPresupuesto)

		// CRM
		crm := api.Group("/crm", auth)
		crm.GET("/prospectos", h.GetProspectos)
		crm.GET("/prospectos/:id", h.GetProspectoByID)
		crm.POST("/prospectos", h.CreateProspecto)
		crm.PUT("/prospectos/:id", h.UpdateProspecto)
		crm.DELETE("/prospectos/:id", h.DeleteProspecto)
		crm.GET("/agenda", h.GetAgenda)

		// Cierres
		cierres := api.Group("/cierres", auth)
		cierres.GET("", h.GetCierres)
		cierres.GET("/:id", h.GetCierreByID)
		cierres.POST("", h.CreateCierre)
		cierres.PUT("/:id", h.UpdateCierre)
		cierres.DELETE("/:id", h.DeleteCierre)
		cierres.GET("/:id/pdf", h.GetCierrePDF)

		// Tablón de notas
		notas := api.Group("/notas", auth)
		notas.GET("", h.GetNotas)
		notas.POST("", h.CreateNota)
		notas.PUT("/:id", h.UpdateNota)
		notas.DELETE("/:id", h.DeleteNota)
	}

	return r
}
