package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestRegisterHandler(t *testing.T) {
	registerForm := url.Values{
		"email":      {"a@x.com"},
		"password":   {"secret1"},
		"first_name": {"A"},
		"last_name":  {"B"},
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := gin.New()
		r.POST("/register", Register(stores.NewUserStore(db)))

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/register", strings.NewReader(registerForm.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := gin.New()
		r.POST("/register", Register(stores.NewUserStore(db)))

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/register", strings.NewReader(registerForm.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("short password is accepted", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := gin.New()
		r.POST("/register", Register(stores.NewUserStore(db)))

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		form := url.Values{
			"email":      {"a@x.com"},
			"password":   {"pw1"},
			"first_name": {"A"},
			"last_name":  {"B"},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/register", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing required field", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := gin.New()
		r.POST("/register", Register(stores.NewUserStore(db)))

		form := url.Values{"email": {"a@x.com"}, "password": {"secret1"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/register", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"error"`)
		// Nothing reached the database.
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name"}).
			AddRow(1, "a@x.com", string(hash), "A", "B")
	}

	loginForm := url.Values{"email": {"a@x.com"}, "password": {"secret1"}}

	t.Run("success starts a session", func(t *testing.T) {
		db, mock := newMockDB(t)
		sm := newSessionManager()
		r := gin.New()
		r.POST("/login", Login(stores.NewUserStore(db), sm))

		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
			WillReturnRows(userRows())

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", strings.NewReader(loginForm.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
		require.Len(t, w.Result().Cookies(), 1)
	})

	t.Run("wrong password", func(t *testing.T) {
		db, mock := newMockDB(t)
		sm := newSessionManager()
		r := gin.New()
		r.POST("/login", Login(stores.NewUserStore(db), sm))

		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
			WillReturnRows(userRows())

		form := url.Values{"email": {"a@x.com"}, "password": {"wrong"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("unknown email", func(t *testing.T) {
		db, mock := newMockDB(t)
		sm := newSessionManager()
		r := gin.New()
		r.POST("/login", Login(stores.NewUserStore(db), sm))

		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", strings.NewReader(loginForm.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})
}

func TestLogoutHandler(t *testing.T) {
	sm := newSessionManager()
	r := gin.New()
	r.GET("/logout", Logout(sm))

	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(sessionCookie(t, sm))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 302, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
