package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ndanilenko/taskboard/internal/models"
)

const dueDateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Errors maps form field names to a single user-facing message each.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

// Validate runs the schema tags of the given form and returns per-field
// messages, or nil when the form is valid.
func Validate(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return Errors{"form": "Invalid input."}
	}

	formErrors := make(Errors, len(fieldErrors))
	for _, fe := range fieldErrors {
		// Keep the first message per field only.
		if !formErrors.Has(fe.Field()) {
			formErrors[fe.Field()] = messageFor(fe)
		}
	}
	return formErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "eqfield":
		return "Passwords do not match."
	case "oneof":
		return "Invalid choice."
	case "datetime":
		return "Use the YYYY-MM-DD date format."
	default:
		return "Invalid value."
	}
}

type RegisterForm struct {
	Username        string `form:"username" validate:"required,min=3,max=150"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func (f *RegisterForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
}

// LoginForm deliberately skips the password length check so that accounts
// created elsewhere with shorter passwords can still sign in.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

type TaskForm struct {
	Title       string `form:"title" validate:"required,max=150"`
	Description string `form:"description" validate:"omitempty,max=2000"`
	Status      string `form:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
	Priority    string `form:"priority" validate:"required,oneof=1 2 3"`
	DueDate     string `form:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (f *TaskForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.DueDate = strings.TrimSpace(f.DueDate)
}

// PriorityValue coerces the submitted priority to its integer value.
// Call it only after a successful Validate.
func (f *TaskForm) PriorityValue() int {
	priority, err := strconv.Atoi(f.Priority)
	if err != nil {
		return models.PriorityLow
	}
	return priority
}

// ParsedDueDate returns the submitted due date, or nil when absent.
func (f *TaskForm) ParsedDueDate() *time.Time {
	if f.DueDate == "" {
		return nil
	}
	dueDate, err := time.Parse(dueDateLayout, f.DueDate)
	if err != nil {
		return nil
	}
	return &dueDate
}

// QuickTaskForm is the abbreviated creation path on the index page.
// Status, priority and due date fall back to the repository defaults.
type QuickTaskForm struct {
	Title       string `form:"title" validate:"required,max=150"`
	Description string `form:"description" validate:"omitempty,max=300"`
}

func (f *QuickTaskForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
}
