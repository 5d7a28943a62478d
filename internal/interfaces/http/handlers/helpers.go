package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

// parseIDParam parses the :id path segment as an unsigned integer.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// currentUser returns the username bound by the auth middleware, empty
// on unauthenticated routes.
func currentUser(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUser)
}
