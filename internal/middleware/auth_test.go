package middleware

import (
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/any", func(c *gin.Context) { util.Success(c, util.GetUserFromContext(c).UserID) })
	r.POST("/staff", RoleMiddleware(model.Teacher), func(c *gin.Context) { util.Success(c, nil) })
	return r
}

func token(t *testing.T, userID string, role model.UserRole, secret string, ttl time.Duration) string {
	t.Helper()
	tok, err := util.GenerateJWT(userID, string(role), secret, ttl)
	require.NoError(t, err)
	return tok
}

func do(r http.Handler, method, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/any", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/any", token(t, "s1", model.Student, "other-secret", time.Hour)).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/any", token(t, "s1", model.Student, testSecret, -time.Minute)).Code)

	w := do(r, http.MethodGet, "/any", token(t, "s1", model.Student, testSecret, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":"s1"`)

	w = do(r, http.MethodGet, "/any?token="+token(t, "s2", model.Student, testSecret, time.Hour), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/staff", token(t, "s1", model.Student, testSecret, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/staff", token(t, "t1", model.Teacher, testSecret, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/staff", token(t, "a1", model.Admin, testSecret, time.Hour)).Code)
}
