package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML with the data every page expects: the CSRF token,
// the pending flash messages (popped, so they show exactly once) and the
// current user when one is resolved.
func (h *handlerImpl) render(c *gin.Context, status int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	session := sessionFromContext(c)
	data["csrf_token"] = session.CSRFToken

	flashes, err := h.sessions.PopFlashes(c, session.ID)
	if err != nil {
		// A page without its notices is better than a 500.
		h.logger.Error().
			Err(err).
			Str("session_id", session.ID).
			Msg("failed to pop flashes")
	}
	data["flashes"] = flashes

	if user, ok := userFromContext(c); ok {
		data["current_user"] = user
	}

	c.HTML(status, template, data)
}

func (h *handlerImpl) renderError(c *gin.Context, status int, message string) {
	h.render(c, status, "error.html", gin.H{
		"code":    status,
		"message": message,
	})
	c.Abort()
}

func (h *handlerImpl) renderNotFound(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, "The page you requested does not exist.")
}

func (h *handlerImpl) renderServerError(c *gin.Context) {
	h.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

func (h *handlerImpl) flash(c *gin.Context, level, message string) {
	session := sessionFromContext(c)
	err := h.sessions.PushFlash(c, session.ID, level, message)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("session_id", session.ID).
			Msg("failed to push flash")
	}
}
