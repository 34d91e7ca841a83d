package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/adolfokaiser/precios-api/internal/server/http/middleware"
)

// CurrentSubject extracts the authenticated caller email from context.
func CurrentSubject(c *gin.Context) string {
	val, ok := c.Get(middleware.SubjectContextKey)
	if !ok {
		return ""
	}
	subject, _ := val.(string)
	return subject
}
