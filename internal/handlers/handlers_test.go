package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/models"
	"github.com/gonetfly/gonetfly-backend/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	return db, mock
}

func newSessionManager() *services.SessionManager {
	return services.NewSessionManager(services.NewMemoryKV(), "test-secret", 0)
}

func sessionCookie(t *testing.T, sm *services.SessionManager) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/login", nil)

	user := &models.User{
		Model:     gorm.Model{ID: 7},
		Email:     "a@x.com",
		FirstName: "A",
		LastName:  "B",
	}
	require.NoError(t, sm.Start(c, user))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}
