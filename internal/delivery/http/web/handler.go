package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ndanilenko/taskboard/internal/services"
)

// CookieOptions configures the session cookie the handler issues.
type CookieOptions struct {
	Name   string
	MaxAge int
	Secure bool
}

type Handler interface {
	HandleSessionMiddleware(c *gin.Context)
	HandleCSRFMiddleware(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleRegisterPage(c *gin.Context)
	HandleRegister(c *gin.Context)
	HandleLoginPage(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleLogout(c *gin.Context)

	HandleIndex(c *gin.Context)
	HandleNewTaskPage(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleQuickAddTask(c *gin.Context)
	HandleEditTaskPage(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleToggleTask(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	auth     services.AuthService
	sessions services.SessionService
	tasks    services.TaskService
	cookie   CookieOptions
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	sessionService services.SessionService,
	taskService services.TaskService,
	cookie CookieOptions,
) Handler {
	return &handlerImpl{
		logger:   logger,
		auth:     authService,
		sessions: sessionService,
		tasks:    taskService,
		cookie:   cookie,
	}
}

func (h *handlerImpl) setSessionCookie(c *gin.Context, sessionID string) {
	const httpOnly = true
	c.SetCookie(h.cookie.Name, sessionID, h.cookie.MaxAge,
		"/", "", h.cookie.Secure, httpOnly)
}
