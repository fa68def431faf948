package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondMalformedJSON is the shared 400 for unparseable request bodies.
// The example payload is fixed; the front end displays it verbatim.
func respondMalformedJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid JSON",
		"message": "Request body must be valid JSON",
		"example": gin.H{
			"name":    "John Doe",
			"email":   "john@example.com",
			"phone":   "(907) 555-0123",
			"message": "Tell us about your project",
		},
	})
}

// respondServerError returns a 500. Outside production the underlying error
// text is included to ease debugging; in production the body stays generic.
func respondServerError(c *gin.Context, production bool, err error) {
	if production {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "detail": err.Error()})
}

// NotFoundHandler is installed as the router's NoRoute handler.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not found",
			"message": "The requested resource does not exist",
		})
	}
}
