package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/services"
)

type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
	Route string `json:"route" binding:"required"`
}

// Subscribe records a price-alert subscription.
func Subscribe(notifier services.PriceAlertNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubscribeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"status": "error", "message": err.Error()})
			return
		}

		if err := notifier.Subscribe(input.Email, input.Route); err != nil {
			c.JSON(500, gin.H{"status": "error", "message": "Failed to subscribe"})
			return
		}

		c.JSON(200, gin.H{"status": "success", "message": "You are subscribed to price alerts!"})
	}
}
