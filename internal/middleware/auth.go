package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/services"
)

// SessionAuth validates the session cookie and binds the identity to
// the gin context. API routes get a JSON error envelope on failure.
func SessionAuth(sm *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sm.Validate(c)
		if err != nil {
			c.JSON(401, gin.H{"status": "error", "message": "Authentication required"})
			c.Abort()
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// SessionAuthPage is the page flavor: unauthenticated requests are
// redirected to the login page instead of getting JSON.
func SessionAuthPage(sm *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sm.Validate(c)
		if err != nil {
			c.Redirect(302, "/login")
			c.Abort()
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// OptionalSession binds the identity when present but never blocks.
// Pages use it to render login state in the navbar.
func OptionalSession(sm *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, err := sm.Validate(c); err == nil {
			setSession(c, session)
		}
		c.Next()
	}
}

func setSession(c *gin.Context, session *services.Session) {
	c.Set("userId", session.UserID)
	c.Set("userEmail", session.Email)
	c.Set("userName", session.Name)
}
