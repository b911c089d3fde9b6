package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID extracts the authenticated user's id set by the auth
// middleware.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("user ID has unexpected type")
	}
	return uuid.Parse(str)
}
