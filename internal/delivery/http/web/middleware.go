package web

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndanilenko/taskboard/internal/models"
	"github.com/ndanilenko/taskboard/internal/services"
)

const (
	sessionCtxKey = "session"
	userCtxKey    = "current_user"

	csrfFormField = "csrf_token"

	loginPath = "/login"
)

// HandleSessionMiddleware resolves the session cookie, issuing a fresh
// anonymous session when there is none. Every page after this point can
// rely on a session being present for flashes and CSRF.
func (h *handlerImpl) HandleSessionMiddleware(c *gin.Context) {
	var session *models.Session

	sessionID, err := c.Cookie(h.cookie.Name)
	if err == nil && sessionID != "" {
		session, err = h.sessions.Get(c, sessionID)
		if err != nil && !errors.Is(err, services.ErrSessionNotFound) {
			h.logger.Error().
				Err(err).
				Msg("failed to resolve session")
			h.renderServerError(c)
			return
		}
	}

	if session == nil {
		session, err = h.sessions.Create(c, "")
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to create session")
			h.renderServerError(c)
			return
		}
		h.setSessionCookie(c, session.ID)
	}

	c.Set(sessionCtxKey, session)
	c.Next()
}

// HandleCSRFMiddleware rejects any POST whose csrf_token form field does
// not match the token bound to the session.
func (h *handlerImpl) HandleCSRFMiddleware(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Next()
		return
	}

	session := sessionFromContext(c)
	received := c.PostForm(csrfFormField)
	if received == "" ||
		subtle.ConstantTimeCompare([]byte(session.CSRFToken), []byte(received)) != 1 {
		h.logger.Warn().
			Str("session_id", session.ID).
			Str("path", c.Request.URL.Path).
			Msg("csrf token mismatch")
		h.renderError(c, http.StatusForbidden, "Invalid or missing CSRF token.")
		return
	}

	c.Next()
}

// HandleAuthMiddleware guards protected routes: anonymous sessions are
// redirected to the login page, authenticated ones get the current user
// resolved into the request context.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	session := sessionFromContext(c)
	if session.UserID == "" {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	user, err := h.auth.GetUserByID(c, session.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			// The session outlived its user; treat it as logged out.
			_ = h.sessions.Delete(c, session.ID)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		h.logger.Error().
			Err(err).
			Str("user_id", session.UserID).
			Msg("failed to resolve current user")
		h.renderServerError(c)
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

func sessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(sessionCtxKey)
	if !exists {
		return &models.Session{}
	}
	session, ok := value.(*models.Session)
	if !ok {
		return &models.Session{}
	}
	return session
}

func userFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userCtxKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
