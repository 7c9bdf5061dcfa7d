package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndanilenko/taskboard/internal/forms"
	"github.com/ndanilenko/taskboard/internal/models"
	"github.com/ndanilenko/taskboard/internal/services"
)

func (h *handlerImpl) HandleRegisterPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{
		"title":  "Register",
		"form":   forms.RegisterForm{},
		"errors": forms.Errors{},
	})
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var form forms.RegisterForm
	err := c.ShouldBind(&form)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind register form")
		h.renderError(c, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}
	form.Normalize()

	if formErrors := forms.Validate(&form); formErrors != nil {
		// Password fields are never sent back to the browser.
		form.Password = ""
		form.ConfirmPassword = ""
		h.render(c, http.StatusOK, "register.html", gin.H{
			"title":  "Register",
			"form":   form,
			"errors": formErrors,
		})
		return
	}

	_, err = h.auth.Register(c, services.RegisterParams{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			h.flash(c, models.FlashDanger, "Email already registered.")
			c.Redirect(http.StatusSeeOther, "/register")
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		h.renderServerError(c)
		return
	}

	h.flash(c, models.FlashSuccess, "Registration successful. Please log in.")
	c.Redirect(http.StatusSeeOther, loginPath)
}

func (h *handlerImpl) HandleLoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{
		"title":  "Log in",
		"form":   forms.LoginForm{},
		"errors": forms.Errors{},
	})
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var form forms.LoginForm
	err := c.ShouldBind(&form)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind login form")
		h.renderError(c, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}
	form.Normalize()

	if formErrors := forms.Validate(&form); formErrors != nil {
		form.Password = ""
		h.render(c, http.StatusOK, "login.html", gin.H{
			"title":  "Log in",
			"form":   form,
			"errors": formErrors,
		})
		return
	}

	user, err := h.auth.Authenticate(c, form.Email, form.Password)
	if err != nil {
		// Unknown email and wrong password produce the same message,
		// so login cannot be used to probe registered emails.
		if errors.Is(err, services.ErrUserNotFound) ||
			errors.Is(err, services.ErrUserPasswordMismatch) {
			form.Password = ""
			h.flash(c, models.FlashDanger, "Invalid email or password.")
			h.render(c, http.StatusOK, "login.html", gin.H{
				"title":  "Log in",
				"form":   form,
				"errors": forms.Errors{},
			})
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to authenticate user")
		h.renderServerError(c)
		return
	}

	// Rotate the session on login so a pre-login token never becomes
	// an authenticated one.
	oldSession := sessionFromContext(c)
	err = h.sessions.Delete(c, oldSession.ID)
	if err != nil {
		h.renderServerError(c)
		return
	}

	session, err := h.sessions.Create(c, user.ID)
	if err != nil {
		h.renderServerError(c)
		return
	}
	h.setSessionCookie(c, session.ID)
	c.Set(sessionCtxKey, session)

	h.flash(c, models.FlashSuccess, "Logged in successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleLogout(c *gin.Context) {
	session := sessionFromContext(c)
	err := h.sessions.Delete(c, session.ID)
	if err != nil {
		h.renderServerError(c)
		return
	}

	// A fresh anonymous session carries the goodbye notice.
	anonymous, err := h.sessions.Create(c, "")
	if err != nil {
		h.renderServerError(c)
		return
	}
	h.setSessionCookie(c, anonymous.ID)
	c.Set(sessionCtxKey, anonymous)

	h.flash(c, models.FlashInfo, "You have been logged out.")
	c.Redirect(http.StatusFound, loginPath)
}
