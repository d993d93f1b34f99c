package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The app renders failures as pages, never as raw stack traces or JSON.

// RenderNotFound renders the 404 page.
func RenderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

// RenderServerError renders the generic 500 page.
func RenderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}
