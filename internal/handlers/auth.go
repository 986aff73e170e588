package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/services"
	"github.com/gonetfly/gonetfly-backend/internal/stores"
)

type RegisterInput struct {
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required"`
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Phone     string `form:"phone"`
}

type LoginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Register creates a new user account from the registration form.
func Register(users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"status": "error", "message": err.Error()})
			return
		}

		if _, err := users.Register(input.Email, input.Password, input.FirstName, input.LastName, input.Phone); err != nil {
			if errors.Is(err, stores.ErrDuplicateEmail) {
				c.JSON(409, gin.H{"status": "error", "message": "A user with this email already exists"})
				return
			}
			c.JSON(500, gin.H{"status": "error", "message": "Failed to create user"})
			return
		}

		c.JSON(201, gin.H{"status": "success", "message": "Registration successful! You can now log in."})
	}
}

// Login checks the credentials and starts a session.
func Login(users *stores.UserStore, sm *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"status": "error", "message": err.Error()})
			return
		}

		user, err := users.Authenticate(input.Email, input.Password)
		if err != nil {
			if errors.Is(err, stores.ErrInvalidCredentials) {
				c.JSON(401, gin.H{"status": "error", "message": "Invalid email or password"})
				return
			}
			c.JSON(500, gin.H{"status": "error", "message": "Login failed"})
			return
		}

		if err := sm.Start(c, user); err != nil {
			c.JSON(500, gin.H{"status": "error", "message": "Failed to start session"})
			return
		}

		c.JSON(200, gin.H{"status": "success", "message": "Logged in successfully!"})
	}
}

// Logout clears the session and sends the browser home.
func Logout(sm *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sm.End(c)
		c.Redirect(302, "/")
	}
}
