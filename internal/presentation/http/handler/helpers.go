package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user's ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetShopID extracts the authenticated user's shop ID from the Gin context
func GetShopID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get("shop_id")
	if !exists {
		return nil
	}
	shopID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &shopID
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
