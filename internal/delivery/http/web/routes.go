package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the handler into the router. The health check is
// registered before the session middleware so probes don't allocate
// sessions.
func RegisterRoutes(router *gin.Engine, handler Handler) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Use(
		handler.HandleSessionMiddleware,
		handler.HandleCSRFMiddleware,
	)

	router.GET("/register", handler.HandleRegisterPage)
	router.POST("/register", handler.HandleRegister)
	router.GET("/login", handler.HandleLoginPage)
	router.POST("/login", handler.HandleLogin)

	authorized := router.Group("/", handler.HandleAuthMiddleware)
	authorized.GET("/logout", handler.HandleLogout)
	authorized.GET("/", handler.HandleIndex)
	authorized.GET("/tasks/new", handler.HandleNewTaskPage)
	authorized.POST("/tasks/new", handler.HandleCreateTask)
	authorized.POST("/tasks/quick", handler.HandleQuickAddTask)
	authorized.GET("/tasks/:id/edit", handler.HandleEditTaskPage)
	authorized.POST("/tasks/:id/edit", handler.HandleUpdateTask)
	authorized.POST("/tasks/:id/delete", handler.HandleDeleteTask)
	authorized.POST("/tasks/:id/toggle", handler.HandleToggleTask)
}
