package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ndanilenko/taskboard/internal/forms"
	"github.com/ndanilenko/taskboard/internal/models"
	"github.com/ndanilenko/taskboard/internal/services"
)

func (h *handlerImpl) HandleIndex(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	filter := services.TaskFilter{
		Query:  strings.TrimSpace(c.Query("q")),
		Status: strings.TrimSpace(c.Query("status")),
		Sort:   strings.TrimSpace(c.Query("sort")),
	}

	tasks, err := h.tasks.ListTasks(c, user.ID, filter)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Msg("failed to list tasks")
		h.renderServerError(c)
		return
	}

	h.render(c, http.StatusOK, "index.html", gin.H{
		"title":  "My tasks",
		"tasks":  tasks,
		"q":      filter.Query,
		"status": filter.Status,
		"sort":   filter.Sort,
		"form":   forms.QuickTaskForm{},
	})
}

func (h *handlerImpl) HandleNewTaskPage(c *gin.Context) {
	h.render(c, http.StatusOK, "task_form.html", gin.H{
		"title":   "Create task",
		"heading": "Create task",
		"action":  "/tasks/new",
		"form": forms.TaskForm{
			Status:   models.StatusPending,
			Priority: strconv.Itoa(models.PriorityLow),
		},
		"errors": forms.Errors{},
	})
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	var form forms.TaskForm
	err := c.ShouldBind(&form)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind task form")
		h.renderError(c, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}
	form.Normalize()

	if formErrors := forms.Validate(&form); formErrors != nil {
		h.render(c, http.StatusOK, "task_form.html", gin.H{
			"title":   "Create task",
			"heading": "Create task",
			"action":  "/tasks/new",
			"form":    form,
			"errors":  formErrors,
		})
		return
	}

	_, err = h.tasks.CreateTask(c, services.CreateTaskParams{
		UserID:      user.ID,
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.PriorityValue(),
		DueDate:     form.ParsedDueDate(),
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Msg("failed to create task")
		h.renderServerError(c)
		return
	}

	h.flash(c, models.FlashSuccess, "Task created successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}

// HandleQuickAddTask always redirects back to the index: there is no
// standalone form page to re-render, so a failed validation only leaves
// a flash behind and the submitted values are dropped.
func (h *handlerImpl) HandleQuickAddTask(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	var form forms.QuickTaskForm
	err := c.ShouldBind(&form)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind quick task form")
		h.flash(c, models.FlashDanger, "Could not read the submitted form.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	form.Normalize()

	if formErrors := forms.Validate(&form); formErrors != nil {
		h.flash(c, models.FlashDanger, "Title is required.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	_, err = h.tasks.CreateTask(c, services.CreateTaskParams{
		UserID:      user.ID,
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Msg("failed to quick-add task")
		h.renderServerError(c)
		return
	}

	h.flash(c, models.FlashSuccess, "Task added.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleEditTaskPage(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetOwnedTask(c, user.ID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to fetch task")
		h.renderServerError(c)
		return
	}

	form := forms.TaskForm{
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    strconv.Itoa(task.Priority),
	}
	if task.DueDate != nil {
		form.DueDate = task.DueDate.Format("2006-01-02")
	}

	h.render(c, http.StatusOK, "task_form.html", gin.H{
		"title":   "Edit task",
		"heading": "Edit task",
		"action":  "/tasks/" + strconv.FormatInt(taskID, 10) + "/edit",
		"form":    form,
		"errors":  forms.Errors{},
	})
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	var form forms.TaskForm
	err := c.ShouldBind(&form)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind task form")
		h.renderError(c, http.StatusBadRequest, "Could not read the submitted form.")
		return
	}
	form.Normalize()

	if formErrors := forms.Validate(&form); formErrors != nil {
		h.render(c, http.StatusOK, "task_form.html", gin.H{
			"title":   "Edit task",
			"heading": "Edit task",
			"action":  "/tasks/" + strconv.FormatInt(taskID, 10) + "/edit",
			"form":    form,
			"errors":  formErrors,
		})
		return
	}

	_, err = h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:          taskID,
		UserID:      user.ID,
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.PriorityValue(),
		DueDate:     form.ParsedDueDate(),
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to update task")
		h.renderServerError(c)
		return
	}

	h.flash(c, models.FlashSuccess, "Task updated.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, user.ID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		h.renderServerError(c)
		return
	}

	h.flash(c, models.FlashInfo, "Task deleted.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	_, err := h.tasks.ToggleTask(c, user.ID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to toggle task")
		h.renderServerError(c)
		return
	}

	h.flash(c, models.FlashSuccess, "Task status updated.")
	c.Redirect(http.StatusSeeOther, "/")
}

// taskIDParam parses the :id route parameter. Malformed ids render the
// same not-found page as missing tasks.
func (h *handlerImpl) taskIDParam(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderNotFound(c)
		return 0, false
	}
	return taskID, true
}
