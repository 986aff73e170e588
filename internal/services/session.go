package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gonetfly/gonetfly-backend/internal/models"
	"github.com/google/uuid"
)

const sessionCookie = "gonetfly_session"

// serverTTLBackstop caps how long an abandoned browser-session record
// lives in redis when no explicit TTL is configured.
const serverTTLBackstop = 24 * time.Hour

// ErrNoSession is returned when the request carries no valid session.
var ErrNoSession = errors.New("no active session")

// Session is the identity bound to an authenticated browser.
type Session struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// SessionManager issues and validates cookie sessions. The cookie
// carries a signed token holding a random session id; the session
// record itself lives server-side so logout revokes it immediately.
type SessionManager struct {
	kv     KV
	secret []byte
	ttl    time.Duration
}

// NewSessionManager builds a manager signing cookies with secret. A
// zero ttl means browser-session cookies.
func NewSessionManager(kv KV, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{kv: kv, secret: []byte(secret), ttl: ttl}
}

func sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

func (m *SessionManager) serverTTL() time.Duration {
	if m.ttl > 0 {
		return m.ttl
	}
	return serverTTLBackstop
}

// Start binds the user to a new session and sets the cookie.
func (m *SessionManager) Start(c *gin.Context, user *models.User) error {
	sid := uuid.NewString()

	data, err := json.Marshal(Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.DisplayName(),
	})
	if err != nil {
		return err
	}

	if err := m.kv.Set(c.Request.Context(), sessionKey(sid), data, m.serverTTL()); err != nil {
		return err
	}

	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.serverTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	// MaxAge 0 leaves the cookie scoped to the browser session.
	maxAge := 0
	if m.ttl > 0 {
		maxAge = int(m.ttl.Seconds())
	}
	c.SetCookie(sessionCookie, signed, maxAge, "/", "", false, true)
	return nil
}

// Validate resolves the request's session cookie to its bound
// identity. Any failure along the way reads as ErrNoSession.
func (m *SessionManager) Validate(c *gin.Context) (*Session, error) {
	signed, err := c.Cookie(sessionCookie)
	if err != nil || signed == "" {
		return nil, ErrNoSession
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return nil, ErrNoSession
	}

	data, err := m.kv.Get(c.Request.Context(), sessionKey(sid))
	if err != nil {
		return nil, ErrNoSession
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, ErrNoSession
	}
	return &session, nil
}

// End revokes the session record and expires the cookie. It succeeds
// even when no session is present.
func (m *SessionManager) End(c *gin.Context) {
	if signed, err := c.Cookie(sessionCookie); err == nil && signed != "" {
		token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		})
		if err == nil {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if sid, ok := claims["sid"].(string); ok && sid != "" {
					_ = m.kv.Del(c.Request.Context(), sessionKey(sid))
				}
			}
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
