package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a numeric path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// currentUserID returns the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) uint64 {
	return c.MustGet("user_id").(uint64)
}

// requireOwner writes a 403 unless ownerId matches the authenticated user.
func requireOwner(c *gin.Context, ownerId uint64, err error) bool {
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return false
	}
	if ownerId != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return false
	}
	return true
}
