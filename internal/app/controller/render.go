package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mgately/fyyur-backend/internal/flash"
)

// render draws an HTML page with any pending flash messages attached.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = flash.Take(c)
	c.HTML(status, name, data)
}

// Home renders the landing page.
// GET /
func Home(c *gin.Context) {
	render(c, 200, "home.html", nil)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// flashFormErrors aggregates per-field validation messages into a single
// flash banner, mirroring the "Errors [...]" notice of the form binder.
func flashFormErrors(c *gin.Context, err error) {
	flash.Add(c, fmt.Sprintf("Errors %v", formErrorMessages(err)))
}

func formErrorMessages(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		return messages
	}
	return []string{err.Error()}
}

func fieldMessage(fe validator.FieldError) string {
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}

// snakeCase maps a struct field name back to its form field name.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
